package in

import (
	"context"

	"focusdesk/internal/modules/window/dto"
	windowin "focusdesk/internal/modules/window/port/in"
)

type CLIHandler struct {
	usecase windowin.Usecase
}

func NewCLIHandler(usecase windowin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ShowAndFocus(ctx context.Context) error {
	return h.usecase.ShowAndFocus(ctx)
}

// MinimizeToTray hides the main window; the tray icon stays.
func (h CLIHandler) MinimizeToTray(ctx context.Context) error {
	return h.usecase.Hide(ctx)
}

func (h CLIHandler) SetAlwaysOnTop(ctx context.Context, enabled bool) error {
	return h.usecase.SetAlwaysOnTop(ctx, dto.AlwaysOnTopInput{Enabled: enabled})
}

func (h CLIHandler) State(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.State(ctx)
}
