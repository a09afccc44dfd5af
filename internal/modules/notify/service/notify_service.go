package service

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"focusdesk/internal/modules/notify/domain"
	notifyout "focusdesk/internal/modules/notify/port/out"
)

type NotifyService struct {
	notifier notifyout.Notifier
	log      hclog.Logger
}

func NewNotifyService(notifier notifyout.Notifier, log hclog.Logger) *NotifyService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &NotifyService{notifier: notifier, log: log}
}

func (s *NotifyService) Show(ctx context.Context, notification domain.Notification) error {
	if err := notification.Validate(); err != nil {
		return err
	}
	if err := s.notifier.Send(ctx, notification); err != nil {
		return err
	}
	s.log.Debug("notification sent", "title", notification.Title)
	return nil
}

func (s *NotifyService) RequestPermission(ctx context.Context) (bool, error) {
	return s.notifier.Permitted(ctx)
}
