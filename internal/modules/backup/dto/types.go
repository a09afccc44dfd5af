package dto

import "time"

type CreateInput struct {
	Name string
}

type BackupOutput struct {
	Name      string
	Stamp     string
	Folder    string
	CreatedAt time.Time
	Documents []string
}

type ReindexOutput struct {
	Count int
}
