package dto

type MenuItemOutput struct {
	ID        string
	Label     string
	Separator bool
}

type ClickInput struct {
	Button string
	State  string
}

type MenuInput struct {
	ID string
}

type DispatchInput struct {
	Event string
}

// OutcomeOutput reports what handling an event did. Skipped is set when the
// event mapped to a window action but no window was available.
type OutcomeOutput struct {
	Shown     bool
	Hidden    bool
	Published string
	Quit      bool
	Skipped   bool
	Ignored   bool
}
