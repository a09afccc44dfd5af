package domain

import (
	"fmt"
	"strings"

	apperrors "focusdesk/internal/platform/errors"
)

type Notification struct {
	Title string
	Body  string
}

func (n Notification) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: notification title is required", apperrors.ErrInvalidInput)
	}
	return nil
}
