package out

import "context"

// WindowControl reports a missing window with apperrors.ErrWindow.
type WindowControl interface {
	ShowAndFocus(ctx context.Context) error
	Hide(ctx context.Context) error
}

type Publisher interface {
	Publish(name string, payload any) error
}

type Terminator interface {
	Terminate(code int)
}
