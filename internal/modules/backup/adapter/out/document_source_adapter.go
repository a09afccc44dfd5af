package out

import (
	"context"

	backupout "focusdesk/internal/modules/backup/port/out"
	documentin "focusdesk/internal/modules/document/port/in"
)

type DocumentSourceAdapter struct {
	documents documentin.Usecase
}

func NewDocumentSourceAdapter(documents documentin.Usecase) backupout.DocumentSource {
	return &DocumentSourceAdapter{documents: documents}
}

func (a *DocumentSourceAdapter) Names() []string {
	return a.documents.Names()
}

func (a *DocumentSourceAdapter) Locate(ctx context.Context, name string) (string, bool, error) {
	doc, err := a.documents.Locate(ctx, name)
	if err != nil {
		return "", false, err
	}
	return doc.Path, doc.Exists, nil
}
