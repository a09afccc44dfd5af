package out

import (
	"context"

	"focusdesk/internal/modules/document/domain"
)

// DocumentStore owns the on-disk document directory. Read reports a missing
// document with apperrors.ErrNotFound; Remove of a missing document is a no-op.
type DocumentStore interface {
	Dir() string
	Stat(ctx context.Context, name domain.Name) (domain.Document, error)
	Read(ctx context.Context, name domain.Name) (string, error)
	Write(ctx context.Context, name domain.Name, content string) error
	Remove(ctx context.Context, name domain.Name) error
}

type ChangeWatcher interface {
	Watch(ctx context.Context) (<-chan domain.Change, error)
}
