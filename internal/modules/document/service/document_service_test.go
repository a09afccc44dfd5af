package service_test

import (
	"context"
	"errors"
	"testing"

	"focusdesk/internal/modules/document/domain"
	"focusdesk/internal/modules/document/service"
	apperrors "focusdesk/internal/platform/errors"
)

type fakeStore struct {
	docs      map[domain.Name]string
	removed   []domain.Name
	failOn    domain.Name
	failWrite bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[domain.Name]string{}}
}

func (f *fakeStore) Dir() string { return "/tmp/focusdesk-test" }

func (f *fakeStore) Stat(_ context.Context, name domain.Name) (domain.Document, error) {
	content, ok := f.docs[name]
	return domain.Document{Name: name, Exists: ok, Size: int64(len(content))}, nil
}

func (f *fakeStore) Read(_ context.Context, name domain.Name) (string, error) {
	content, ok := f.docs[name]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return content, nil
}

func (f *fakeStore) Write(_ context.Context, name domain.Name, content string) error {
	if f.failWrite {
		return apperrors.ErrIO
	}
	f.docs[name] = content
	return nil
}

func (f *fakeStore) Remove(_ context.Context, name domain.Name) error {
	if name == f.failOn {
		return apperrors.ErrIO
	}
	delete(f.docs, name)
	f.removed = append(f.removed, name)
	return nil
}

func TestReadSurfacesSeedFailure(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	store.failWrite = true
	svc := service.NewDocumentService(store, nil, nil)

	if _, err := svc.Read(context.Background(), domain.Settings); !errors.Is(err, apperrors.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	content, err := svc.Read(context.Background(), domain.Activities)
	if err != nil || content != "[]" {
		t.Fatalf("activities must not need a write: %q %v", content, err)
	}
}

func TestResetAllStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	for _, name := range domain.Names() {
		store.docs[name] = "{}"
	}
	store.failOn = domain.Settings
	svc := service.NewDocumentService(store, nil, nil)

	if err := svc.ResetAll(context.Background()); !errors.Is(err, apperrors.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	if len(store.removed) != 2 || store.removed[0] != domain.Profiles || store.removed[1] != domain.Activities {
		t.Fatalf("unexpected removals %v", store.removed)
	}
	if _, ok := store.docs[domain.Todos]; !ok {
		t.Fatalf("todos should not be touched after the failure")
	}
}
