package usecase

import (
	"context"

	"focusdesk/internal/modules/tray/domain"
	"focusdesk/internal/modules/tray/dto"
	trayin "focusdesk/internal/modules/tray/port/in"
	"focusdesk/internal/modules/tray/service"
)

type Interactor struct {
	svc *service.TrayService
}

func NewInteractor(svc *service.TrayService) trayin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Menu() []dto.MenuItemOutput {
	menu := domain.Menu()
	out := make([]dto.MenuItemOutput, 0, len(menu))
	for _, item := range menu {
		out = append(out, dto.MenuItemOutput{ID: item.ID, Label: item.Label, Separator: item.Separator})
	}
	return out
}

func (i *Interactor) Click(ctx context.Context, input dto.ClickInput) (dto.OutcomeOutput, error) {
	return i.handle(ctx, domain.Click(domain.Button(input.Button), domain.ButtonState(input.State)))
}

func (i *Interactor) SelectMenu(ctx context.Context, input dto.MenuInput) (dto.OutcomeOutput, error) {
	return i.handle(ctx, domain.MenuSelected(input.ID))
}

func (i *Interactor) CloseRequested(ctx context.Context) (dto.OutcomeOutput, error) {
	return i.handle(ctx, domain.CloseRequested())
}

func (i *Interactor) Dispatch(ctx context.Context, input dto.DispatchInput) (dto.OutcomeOutput, error) {
	evt, err := domain.ParseEvent(input.Event)
	if err != nil {
		return dto.OutcomeOutput{}, err
	}
	return i.handle(ctx, evt)
}

func (i *Interactor) handle(ctx context.Context, evt domain.Event) (dto.OutcomeOutput, error) {
	outcome, err := i.svc.Handle(ctx, evt)
	if err != nil {
		return dto.OutcomeOutput{}, err
	}
	return dto.OutcomeOutput{
		Shown:     outcome.Action.ShowWindow && !outcome.Skipped,
		Hidden:    outcome.Action.HideWindow && !outcome.Skipped,
		Published: outcome.Published,
		Quit:      outcome.Action.Quit,
		Skipped:   outcome.Skipped,
		Ignored:   outcome.Action.None(),
	}, nil
}
