package out

import (
	"context"

	trayout "focusdesk/internal/modules/tray/port/out"
	windowin "focusdesk/internal/modules/window/port/in"
)

type WindowControlAdapter struct {
	window windowin.Usecase
}

func NewWindowControlAdapter(window windowin.Usecase) trayout.WindowControl {
	return &WindowControlAdapter{window: window}
}

func (a *WindowControlAdapter) ShowAndFocus(ctx context.Context) error {
	return a.window.ShowAndFocus(ctx)
}

func (a *WindowControlAdapter) Hide(ctx context.Context) error {
	return a.window.Hide(ctx)
}
