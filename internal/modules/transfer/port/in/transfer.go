package in

import (
	"context"

	"focusdesk/internal/modules/transfer/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.TransferInput) (dto.TransferOutput, error)
	Import(ctx context.Context, input dto.TransferInput) (dto.TransferOutput, error)
}
