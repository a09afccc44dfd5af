package usecase

import (
	"context"

	"focusdesk/internal/modules/transfer/domain"
	"focusdesk/internal/modules/transfer/dto"
	transferin "focusdesk/internal/modules/transfer/port/in"
	"focusdesk/internal/modules/transfer/service"
)

type Interactor struct {
	svc *service.TransferService
}

func NewInteractor(svc *service.TransferService) transferin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context, input dto.TransferInput) (dto.TransferOutput, error) {
	n, err := i.svc.Export(ctx, domain.Request{Type: input.Type, Path: input.Path})
	if err != nil {
		return dto.TransferOutput{}, err
	}
	return dto.TransferOutput{Type: input.Type, Path: input.Path, Bytes: n}, nil
}

func (i *Interactor) Import(ctx context.Context, input dto.TransferInput) (dto.TransferOutput, error) {
	n, err := i.svc.Import(ctx, domain.Request{Type: input.Type, Path: input.Path})
	if err != nil {
		return dto.TransferOutput{}, err
	}
	return dto.TransferOutput{Type: input.Type, Path: input.Path, Bytes: n}, nil
}
