package out

import "focusdesk/internal/modules/window/domain"

type Window interface {
	Show() error
	Focus() error
	Hide() error
	SetAlwaysOnTop(enabled bool) error
	State() domain.State
}

// Resolver looks up a window by label. ok is false once the window is gone
// or before it was ever created.
type Resolver interface {
	Lookup(label string) (Window, bool)
}
