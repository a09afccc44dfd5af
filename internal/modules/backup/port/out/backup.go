package out

import (
	"context"

	"focusdesk/internal/modules/backup/domain"
)

// DocumentSource resolves the live documents a snapshot captures.
type DocumentSource interface {
	Names() []string
	Locate(ctx context.Context, name string) (path string, exists bool, err error)
}

type SnapshotStore interface {
	Root() string
	CreateFolder(ctx context.Context, folder string) (string, error)
	Copy(ctx context.Context, src, folderPath string) error
	Scan(ctx context.Context) ([]domain.Backup, error)
}

type Catalog interface {
	Reset(ctx context.Context) error
	Record(ctx context.Context, backup domain.Backup) error
	List(ctx context.Context) ([]domain.Backup, error)
	Close() error
}
