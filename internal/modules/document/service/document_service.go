package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"

	"focusdesk/internal/modules/document/domain"
	documentout "focusdesk/internal/modules/document/port/out"
	apperrors "focusdesk/internal/platform/errors"
)

type DocumentService struct {
	store   documentout.DocumentStore
	watcher documentout.ChangeWatcher
	log     hclog.Logger
}

func NewDocumentService(store documentout.DocumentStore, watcher documentout.ChangeWatcher, log hclog.Logger) *DocumentService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &DocumentService{store: store, watcher: watcher, log: log}
}

// Read returns the stored payload. A document that was never written yields
// its default, which is persisted first unless the default is transient.
func (s *DocumentService) Read(ctx context.Context, name domain.Name) (string, error) {
	content, err := s.store.Read(ctx, name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}
	def := domain.DefaultFor(name)
	if def.Persist {
		if err := s.store.Write(ctx, name, def.Content); err != nil {
			return "", err
		}
		s.log.Debug("seeded default document", "name", name)
	}
	return def.Content, nil
}

func (s *DocumentService) Write(ctx context.Context, name domain.Name, content string) error {
	return s.store.Write(ctx, name, content)
}

// ResetAll removes every document. Removal stops at the first failure and
// documents removed before it stay removed.
func (s *DocumentService) ResetAll(ctx context.Context) error {
	for _, name := range domain.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.store.Remove(ctx, name); err != nil {
			return err
		}
	}
	s.log.Info("documents reset", "dir", s.store.Dir())
	return nil
}

func (s *DocumentService) DataDir() (string, error) {
	dir := s.store.Dir()
	if dir == "" {
		return "", fmt.Errorf("%w: data dir unknown", apperrors.ErrIO)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: resolve data dir: %w", apperrors.ErrIO, err)
	}
	return abs, nil
}

func (s *DocumentService) Locate(ctx context.Context, name domain.Name) (domain.Document, error) {
	return s.store.Stat(ctx, name)
}

func (s *DocumentService) Status(ctx context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(domain.Names()))
	for _, name := range domain.Names() {
		doc, err := s.store.Stat(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *DocumentService) Watch(ctx context.Context) (<-chan domain.Change, error) {
	if s.watcher == nil {
		return nil, fmt.Errorf("document watch is not configured")
	}
	return s.watcher.Watch(ctx)
}
