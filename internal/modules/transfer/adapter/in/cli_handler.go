package in

import (
	"context"

	"focusdesk/internal/modules/transfer/dto"
	transferin "focusdesk/internal/modules/transfer/port/in"
)

type CLIHandler struct {
	usecase transferin.Usecase
}

func NewCLIHandler(usecase transferin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, dataType, path string) (dto.TransferOutput, error) {
	return h.usecase.Export(ctx, dto.TransferInput{Type: dataType, Path: path})
}

func (h CLIHandler) Import(ctx context.Context, dataType, path string) (dto.TransferOutput, error) {
	return h.usecase.Import(ctx, dto.TransferInput{Type: dataType, Path: path})
}
