package service

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"focusdesk/internal/modules/tray/domain"
	trayout "focusdesk/internal/modules/tray/port/out"
	apperrors "focusdesk/internal/platform/errors"
)

// Outcome records what Handle did for one event.
type Outcome struct {
	Action    domain.Action
	Published string
	Skipped   bool
}

type TrayService struct {
	window     trayout.WindowControl
	publisher  trayout.Publisher
	terminator trayout.Terminator
	log        hclog.Logger
}

func NewTrayService(window trayout.WindowControl, publisher trayout.Publisher, terminator trayout.Terminator, log hclog.Logger) *TrayService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &TrayService{window: window, publisher: publisher, terminator: terminator, log: log}
}

// Handle never fails because the window is missing: such events are dropped
// and no UI event is published for them.
func (s *TrayService) Handle(ctx context.Context, evt domain.Event) (Outcome, error) {
	action := domain.Resolve(evt)
	outcome := Outcome{Action: action}

	switch {
	case action.None():
		return outcome, nil
	case action.Quit:
		s.log.Info("quit requested from tray")
		s.terminator.Terminate(0)
		return outcome, nil
	case action.HideWindow:
		if err := s.window.Hide(ctx); err != nil {
			return s.skip(outcome, evt, err)
		}
		return outcome, nil
	}

	if action.ShowWindow {
		if err := s.window.ShowAndFocus(ctx); err != nil {
			return s.skip(outcome, evt, err)
		}
	}
	if action.Publish != "" {
		if err := s.publisher.Publish(action.Publish, struct{}{}); err != nil {
			s.log.Warn("publish ui event failed", "event", action.Publish, "error", err)
			return outcome, nil
		}
		outcome.Published = action.Publish
	}
	return outcome, nil
}

func (s *TrayService) skip(outcome Outcome, evt domain.Event, err error) (Outcome, error) {
	if errors.Is(err, apperrors.ErrWindow) {
		s.log.Debug("tray event skipped, window unavailable", "kind", evt.Kind, "menu", evt.MenuID)
		outcome.Skipped = true
		return outcome, nil
	}
	return outcome, err
}
