package dto

type AlwaysOnTopInput struct {
	Enabled bool
}

type StateOutput struct {
	Label       string
	Visible     bool
	Focused     bool
	AlwaysOnTop bool
}
