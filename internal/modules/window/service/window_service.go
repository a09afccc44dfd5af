package service

import (
	"fmt"

	"focusdesk/internal/modules/window/domain"
	windowout "focusdesk/internal/modules/window/port/out"
	apperrors "focusdesk/internal/platform/errors"
)

type WindowService struct {
	resolver windowout.Resolver
}

func NewWindowService(resolver windowout.Resolver) *WindowService {
	return &WindowService{resolver: resolver}
}

func (s *WindowService) main() (windowout.Window, error) {
	window, ok := s.resolver.Lookup(domain.MainLabel)
	if !ok || window == nil {
		return nil, fmt.Errorf("%w: %s window unavailable", apperrors.ErrWindow, domain.MainLabel)
	}
	return window, nil
}

func (s *WindowService) ShowAndFocus() error {
	window, err := s.main()
	if err != nil {
		return err
	}
	if err := window.Show(); err != nil {
		return fmt.Errorf("%w: show: %w", apperrors.ErrWindow, err)
	}
	if err := window.Focus(); err != nil {
		return fmt.Errorf("%w: focus: %w", apperrors.ErrWindow, err)
	}
	return nil
}

func (s *WindowService) Hide() error {
	window, err := s.main()
	if err != nil {
		return err
	}
	if err := window.Hide(); err != nil {
		return fmt.Errorf("%w: hide: %w", apperrors.ErrWindow, err)
	}
	return nil
}

func (s *WindowService) SetAlwaysOnTop(enabled bool) error {
	window, err := s.main()
	if err != nil {
		return err
	}
	if err := window.SetAlwaysOnTop(enabled); err != nil {
		return fmt.Errorf("%w: always on top: %w", apperrors.ErrWindow, err)
	}
	return nil
}

func (s *WindowService) State() (domain.State, error) {
	window, err := s.main()
	if err != nil {
		return domain.State{}, err
	}
	return window.State(), nil
}
