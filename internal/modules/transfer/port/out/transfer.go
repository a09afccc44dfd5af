package out

import "context"

// DocumentAccess reaches the live document store. Locate rejects names
// outside the document set with apperrors.ErrUnknownType.
type DocumentAccess interface {
	Locate(ctx context.Context, name string) (path string, exists bool, err error)
	Write(ctx context.Context, name, content string) error
}

// ExternalFiles reads and writes files the user picked outside the data dir.
// ReadFile reports a missing file with apperrors.ErrNotFound.
type ExternalFiles interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	CopyFile(ctx context.Context, src, dst string) (int, error)
}
