package dto

import "time"

type ReadInput struct {
	Name string
}

type ReadOutput struct {
	Name    string
	Content string
}

type WriteInput struct {
	Name    string
	Content string
}

type DocumentOutput struct {
	Name       string
	Path       string
	Exists     bool
	Size       int64
	ModifiedAt time.Time
}

type ChangeOutput struct {
	Name string
	Op   string
}
