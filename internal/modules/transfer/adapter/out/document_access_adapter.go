package out

import (
	"context"

	documentdto "focusdesk/internal/modules/document/dto"
	documentin "focusdesk/internal/modules/document/port/in"
	transferout "focusdesk/internal/modules/transfer/port/out"
)

type DocumentAccessAdapter struct {
	documents documentin.Usecase
}

func NewDocumentAccessAdapter(documents documentin.Usecase) transferout.DocumentAccess {
	return &DocumentAccessAdapter{documents: documents}
}

func (a *DocumentAccessAdapter) Locate(ctx context.Context, name string) (string, bool, error) {
	doc, err := a.documents.Locate(ctx, name)
	if err != nil {
		return "", false, err
	}
	return doc.Path, doc.Exists, nil
}

func (a *DocumentAccessAdapter) Write(ctx context.Context, name, content string) error {
	return a.documents.Write(ctx, documentdto.WriteInput{Name: name, Content: content})
}
