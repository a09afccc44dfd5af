package in

import (
	"context"

	"focusdesk/internal/modules/document/dto"
	documentin "focusdesk/internal/modules/document/port/in"
)

type CLIHandler struct {
	usecase documentin.Usecase
}

func NewCLIHandler(usecase documentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Read(ctx context.Context, name string) (string, error) {
	out, err := h.usecase.Read(ctx, dto.ReadInput{Name: name})
	if err != nil {
		return "", err
	}
	return out.Content, nil
}

func (h CLIHandler) Write(ctx context.Context, name, content string) error {
	return h.usecase.Write(ctx, dto.WriteInput{Name: name, Content: content})
}

func (h CLIHandler) ResetAll(ctx context.Context) error {
	return h.usecase.ResetAll(ctx)
}

func (h CLIHandler) DataDir(ctx context.Context) (string, error) {
	return h.usecase.DataDir(ctx)
}

func (h CLIHandler) Status(ctx context.Context) ([]dto.DocumentOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Locate(ctx context.Context, name string) (dto.DocumentOutput, error) {
	return h.usecase.Locate(ctx, name)
}

func (h CLIHandler) Names() []string {
	return h.usecase.Names()
}

func (h CLIHandler) Watch(ctx context.Context) (<-chan dto.ChangeOutput, error) {
	return h.usecase.Watch(ctx)
}
