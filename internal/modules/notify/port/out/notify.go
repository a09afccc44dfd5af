package out

import (
	"context"

	"focusdesk/internal/modules/notify/domain"
)

type Notifier interface {
	Send(ctx context.Context, notification domain.Notification) error
	Permitted(ctx context.Context) (bool, error)
}
