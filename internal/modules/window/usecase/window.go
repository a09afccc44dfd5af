package usecase

import (
	"context"

	"focusdesk/internal/modules/window/dto"
	windowin "focusdesk/internal/modules/window/port/in"
	"focusdesk/internal/modules/window/service"
)

type Interactor struct {
	svc *service.WindowService
}

func NewInteractor(svc *service.WindowService) windowin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ShowAndFocus(_ context.Context) error {
	return i.svc.ShowAndFocus()
}

func (i *Interactor) Hide(_ context.Context) error {
	return i.svc.Hide()
}

func (i *Interactor) SetAlwaysOnTop(_ context.Context, input dto.AlwaysOnTopInput) error {
	return i.svc.SetAlwaysOnTop(input.Enabled)
}

func (i *Interactor) State(_ context.Context) (dto.StateOutput, error) {
	state, err := i.svc.State()
	if err != nil {
		return dto.StateOutput{}, err
	}
	return dto.StateOutput{
		Label:       state.Label,
		Visible:     state.Visible,
		Focused:     state.Focused,
		AlwaysOnTop: state.AlwaysOnTop,
	}, nil
}
