package in

import (
	"context"

	"focusdesk/internal/modules/backup/dto"
	backupin "focusdesk/internal/modules/backup/port/in"
)

type CLIHandler struct {
	usecase backupin.Usecase
}

func NewCLIHandler(usecase backupin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, name string) (dto.BackupOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{Name: name})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.BackupOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	out, err := h.usecase.Reindex(ctx)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}
