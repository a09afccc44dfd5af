package in

import (
	"context"

	"focusdesk/internal/modules/document/dto"
)

type Usecase interface {
	Read(ctx context.Context, input dto.ReadInput) (dto.ReadOutput, error)
	Write(ctx context.Context, input dto.WriteInput) error
	ResetAll(ctx context.Context) error
	DataDir(ctx context.Context) (string, error)
	Status(ctx context.Context) ([]dto.DocumentOutput, error)
	Locate(ctx context.Context, name string) (dto.DocumentOutput, error)
	Names() []string
	Watch(ctx context.Context) (<-chan dto.ChangeOutput, error)
}
