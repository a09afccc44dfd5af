package usecase

import (
	"context"

	"focusdesk/internal/modules/backup/domain"
	"focusdesk/internal/modules/backup/dto"
	backupin "focusdesk/internal/modules/backup/port/in"
	"focusdesk/internal/modules/backup/service"
)

type Interactor struct {
	svc *service.BackupService
}

func NewInteractor(svc *service.BackupService) backupin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.BackupOutput, error) {
	backup, err := i.svc.Create(ctx, input.Name)
	if err != nil {
		return dto.BackupOutput{}, err
	}
	return toOutput(backup), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.BackupOutput, error) {
	backups, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BackupOutput, 0, len(backups))
	for _, backup := range backups {
		out = append(out, toOutput(backup))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) (dto.ReindexOutput, error) {
	count, err := i.svc.Reindex(ctx)
	if err != nil {
		return dto.ReindexOutput{}, err
	}
	return dto.ReindexOutput{Count: count}, nil
}

func toOutput(backup domain.Backup) dto.BackupOutput {
	return dto.BackupOutput{
		Name:      backup.Name,
		Stamp:     backup.Stamp,
		Folder:    backup.Folder,
		CreatedAt: backup.CreatedAt,
		Documents: backup.Documents,
	}
}
