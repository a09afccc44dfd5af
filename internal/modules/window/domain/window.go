package domain

// MainLabel names the single application window.
const MainLabel = "main"

type State struct {
	Label       string
	Visible     bool
	Focused     bool
	AlwaysOnTop bool
}
