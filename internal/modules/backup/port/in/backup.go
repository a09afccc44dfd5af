package in

import (
	"context"

	"focusdesk/internal/modules/backup/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.BackupOutput, error)
	List(ctx context.Context) ([]dto.BackupOutput, error)
	Reindex(ctx context.Context) (dto.ReindexOutput, error)
}
