package in

import (
	"context"

	"focusdesk/internal/modules/tray/dto"
)

type Usecase interface {
	Menu() []dto.MenuItemOutput
	Click(ctx context.Context, input dto.ClickInput) (dto.OutcomeOutput, error)
	SelectMenu(ctx context.Context, input dto.MenuInput) (dto.OutcomeOutput, error)
	CloseRequested(ctx context.Context) (dto.OutcomeOutput, error)
	Dispatch(ctx context.Context, input dto.DispatchInput) (dto.OutcomeOutput, error)
}
