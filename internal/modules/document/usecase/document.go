package usecase

import (
	"context"

	"focusdesk/internal/modules/document/domain"
	"focusdesk/internal/modules/document/dto"
	documentin "focusdesk/internal/modules/document/port/in"
	"focusdesk/internal/modules/document/service"
)

type Interactor struct {
	svc *service.DocumentService
}

func NewInteractor(svc *service.DocumentService) documentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Read(ctx context.Context, input dto.ReadInput) (dto.ReadOutput, error) {
	name, err := domain.Parse(input.Name)
	if err != nil {
		return dto.ReadOutput{}, err
	}
	content, err := i.svc.Read(ctx, name)
	if err != nil {
		return dto.ReadOutput{}, err
	}
	return dto.ReadOutput{Name: string(name), Content: content}, nil
}

func (i *Interactor) Write(ctx context.Context, input dto.WriteInput) error {
	name, err := domain.Parse(input.Name)
	if err != nil {
		return err
	}
	return i.svc.Write(ctx, name, input.Content)
}

func (i *Interactor) ResetAll(ctx context.Context) error {
	return i.svc.ResetAll(ctx)
}

func (i *Interactor) DataDir(_ context.Context) (string, error) {
	return i.svc.DataDir()
}

func (i *Interactor) Status(ctx context.Context) ([]dto.DocumentOutput, error) {
	docs, err := i.svc.Status(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentOutput, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toDocumentOutput(doc))
	}
	return out, nil
}

func (i *Interactor) Locate(ctx context.Context, raw string) (dto.DocumentOutput, error) {
	name, err := domain.Parse(raw)
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	doc, err := i.svc.Locate(ctx, name)
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	return toDocumentOutput(doc), nil
}

func (i *Interactor) Names() []string {
	names := domain.Names()
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, string(name))
	}
	return out
}

func (i *Interactor) Watch(ctx context.Context) (<-chan dto.ChangeOutput, error) {
	changes, err := i.svc.Watch(ctx)
	if err != nil {
		return nil, err
	}
	out := make(chan dto.ChangeOutput)
	go func() {
		defer close(out)
		for change := range changes {
			select {
			case out <- dto.ChangeOutput{Name: string(change.Name), Op: string(change.Op)}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func toDocumentOutput(doc domain.Document) dto.DocumentOutput {
	return dto.DocumentOutput{
		Name:       string(doc.Name),
		Path:       doc.Path,
		Exists:     doc.Exists,
		Size:       doc.Size,
		ModifiedAt: doc.ModifiedAt,
	}
}
