package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focusdesk/internal/modules/document/domain"
	documentout "focusdesk/internal/modules/document/port/out"
	apperrors "focusdesk/internal/platform/errors"
)

type FileDocumentStore struct {
	dir string
}

func NewFileDocumentStore(dataDir string) *FileDocumentStore {
	return &FileDocumentStore{dir: dataDir}
}

var _ documentout.DocumentStore = (*FileDocumentStore)(nil)

func (s *FileDocumentStore) Dir() string {
	return s.dir
}

func (s *FileDocumentStore) path(name domain.Name) string {
	return filepath.Join(s.dir, name.FileName())
}

func (s *FileDocumentStore) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create app dir: %w", apperrors.ErrIO, err)
	}
	return nil
}

func (s *FileDocumentStore) Stat(_ context.Context, name domain.Name) (domain.Document, error) {
	doc := domain.Document{Name: name, Path: s.path(name)}
	info, err := os.Stat(doc.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return domain.Document{}, fmt.Errorf("%w: stat %s: %w", apperrors.ErrIO, name, err)
	}
	doc.Exists = true
	doc.Size = info.Size()
	doc.ModifiedAt = info.ModTime()
	return doc, nil
}

func (s *FileDocumentStore) Read(_ context.Context, name domain.Name) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrNotFound, name)
		}
		return "", fmt.Errorf("%w: read %s: %w", apperrors.ErrIO, name, err)
	}
	return string(raw), nil
}

func (s *FileDocumentStore) Write(_ context.Context, name domain.Name, content string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrIO, name, err)
	}
	return nil
}

func (s *FileDocumentStore) Remove(_ context.Context, name domain.Name) error {
	if err := os.Remove(s.path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: remove %s: %w", apperrors.ErrIO, name.FileName(), err)
	}
	return nil
}
