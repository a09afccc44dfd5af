package in

import (
	"context"

	"focusdesk/internal/modules/window/dto"
)

type Usecase interface {
	ShowAndFocus(ctx context.Context) error
	Hide(ctx context.Context) error
	SetAlwaysOnTop(ctx context.Context, input dto.AlwaysOnTopInput) error
	State(ctx context.Context) (dto.StateOutput, error)
}
