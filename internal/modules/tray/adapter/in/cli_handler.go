package in

import (
	"context"

	"focusdesk/internal/modules/tray/dto"
	trayin "focusdesk/internal/modules/tray/port/in"
)

type CLIHandler struct {
	usecase trayin.Usecase
}

func NewCLIHandler(usecase trayin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Menu() []dto.MenuItemOutput {
	return h.usecase.Menu()
}

func (h CLIHandler) Dispatch(ctx context.Context, event string) (dto.OutcomeOutput, error) {
	return h.usecase.Dispatch(ctx, dto.DispatchInput{Event: event})
}

func (h CLIHandler) SelectMenu(ctx context.Context, id string) (dto.OutcomeOutput, error) {
	return h.usecase.SelectMenu(ctx, dto.MenuInput{ID: id})
}

func (h CLIHandler) LeftClick(ctx context.Context) (dto.OutcomeOutput, error) {
	return h.usecase.Click(ctx, dto.ClickInput{Button: "left", State: "up"})
}

func (h CLIHandler) CloseRequested(ctx context.Context) (dto.OutcomeOutput, error) {
	return h.usecase.CloseRequested(ctx)
}
