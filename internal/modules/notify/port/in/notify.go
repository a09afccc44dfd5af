package in

import (
	"context"

	"focusdesk/internal/modules/notify/dto"
)

type Usecase interface {
	Show(ctx context.Context, input dto.NotificationInput) error
	RequestPermission(ctx context.Context) (bool, error)
}
