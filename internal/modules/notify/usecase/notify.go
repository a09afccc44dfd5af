package usecase

import (
	"context"

	"focusdesk/internal/modules/notify/domain"
	"focusdesk/internal/modules/notify/dto"
	notifyin "focusdesk/internal/modules/notify/port/in"
	"focusdesk/internal/modules/notify/service"
)

type Interactor struct {
	svc *service.NotifyService
}

func NewInteractor(svc *service.NotifyService) notifyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Show(ctx context.Context, input dto.NotificationInput) error {
	return i.svc.Show(ctx, domain.Notification{Title: input.Title, Body: input.Body})
}

func (i *Interactor) RequestPermission(ctx context.Context) (bool, error) {
	return i.svc.RequestPermission(ctx)
}
