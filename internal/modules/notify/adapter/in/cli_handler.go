package in

import (
	"context"

	"focusdesk/internal/modules/notify/dto"
	notifyin "focusdesk/internal/modules/notify/port/in"
)

type CLIHandler struct {
	usecase notifyin.Usecase
}

func NewCLIHandler(usecase notifyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context, title, body string) error {
	return h.usecase.Show(ctx, dto.NotificationInput{Title: title, Body: body})
}

func (h CLIHandler) RequestPermission(ctx context.Context) (bool, error) {
	return h.usecase.RequestPermission(ctx)
}
