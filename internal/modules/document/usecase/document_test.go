package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	documentout "focusdesk/internal/modules/document/adapter/out"
	"focusdesk/internal/modules/document/domain"
	"focusdesk/internal/modules/document/dto"
	documentin "focusdesk/internal/modules/document/port/in"
	"focusdesk/internal/modules/document/service"
	"focusdesk/internal/modules/document/usecase"
	apperrors "focusdesk/internal/platform/errors"
)

func newUsecase(t *testing.T) (documentin.Usecase, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "focusdesk")
	store := documentout.NewFileDocumentStore(dir)
	svc := service.NewDocumentService(store, nil, nil)
	return usecase.NewInteractor(svc), dir
}

func TestReadSeedsPersistedDefaults(t *testing.T) {
	t.Parallel()
	uc, dir := newUsecase(t)
	ctx := context.Background()

	for _, name := range []domain.Name{domain.Profiles, domain.Settings, domain.Todos} {
		out, err := uc.Read(ctx, dto.ReadInput{Name: string(name)})
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		want := domain.DefaultFor(name).Content
		if out.Content != want {
			t.Fatalf("%s: expected default content, got %q", name, out.Content)
		}
		raw, err := os.ReadFile(filepath.Join(dir, name.FileName()))
		if err != nil {
			t.Fatalf("%s: expected seeded file: %v", name, err)
		}
		if string(raw) != want {
			t.Fatalf("%s: seeded file differs from default", name)
		}
	}
}

func TestReadActivitiesDoesNotPersistDefault(t *testing.T) {
	t.Parallel()
	uc, dir := newUsecase(t)

	out, err := uc.Read(context.Background(), dto.ReadInput{Name: "activities"})
	if err != nil {
		t.Fatalf("read activities: %v", err)
	}
	if out.Content != "[]" {
		t.Fatalf("expected [], got %q", out.Content)
	}
	if _, err := os.Stat(filepath.Join(dir, "activities.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no activities file, got %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected data dir to exist: %v", err)
	}
}

func TestWriteThenReadIsByteIdentical(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	ctx := context.Background()
	payload := "{ \"lists\" : [ {\"id\":1} ],\n  \"x\": \"é\" }\n"

	for _, name := range uc.Names() {
		if err := uc.Write(ctx, dto.WriteInput{Name: name, Content: payload}); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		out, err := uc.Read(ctx, dto.ReadInput{Name: name})
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if out.Content != payload {
			t.Fatalf("%s: round trip changed content: %q", name, out.Content)
		}
	}
}

func TestWriteDoesNotValidateShape(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	if err := uc.Write(context.Background(), dto.WriteInput{Name: "settings", Content: "not json"}); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestUnknownNameRejected(t *testing.T) {
	t.Parallel()
	uc, dir := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.Read(ctx, dto.ReadInput{Name: "notes"}); !errors.Is(err, apperrors.ErrUnknownType) {
		t.Fatalf("read: expected unknown type, got %v", err)
	}
	if err := uc.Write(ctx, dto.WriteInput{Name: "notes", Content: "{}"}); !errors.Is(err, apperrors.ErrUnknownType) {
		t.Fatalf("write: expected unknown type, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unknown name must not reach disk: %v", err)
	}
}

func TestResetAllIsIdempotent(t *testing.T) {
	t.Parallel()
	uc, dir := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.Read(ctx, dto.ReadInput{Name: "profiles"}); err != nil {
		t.Fatalf("seed profiles: %v", err)
	}
	if err := uc.Write(ctx, dto.WriteInput{Name: "activities", Content: `[{"id":"a"}]`}); err != nil {
		t.Fatalf("write activities: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := uc.ResetAll(ctx); err != nil {
			t.Fatalf("reset #%d: %v", i+1, err)
		}
	}
	for _, name := range uc.Names() {
		if _, err := os.Stat(filepath.Join(dir, name+".json")); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("%s survived reset: %v", name, err)
		}
	}

	out, err := uc.Read(ctx, dto.ReadInput{Name: "profiles"})
	if err != nil {
		t.Fatalf("read after reset: %v", err)
	}
	if out.Content != domain.DefaultFor(domain.Profiles).Content {
		t.Fatalf("expected defaults after reset")
	}
}

func TestStatusAndDataDir(t *testing.T) {
	t.Parallel()
	uc, dir := newUsecase(t)
	ctx := context.Background()

	if err := uc.Write(ctx, dto.WriteInput{Name: "todos", Content: `{"lists": []}`}); err != nil {
		t.Fatalf("write todos: %v", err)
	}
	status, err := uc.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if len(status) != 4 {
		t.Fatalf("expected four documents, got %d", len(status))
	}
	for _, doc := range status {
		if doc.Exists != (doc.Name == "todos") {
			t.Fatalf("%s: unexpected exists=%t", doc.Name, doc.Exists)
		}
	}

	got, err := uc.DataDir(ctx)
	if err != nil {
		t.Fatalf("data dir: %v", err)
	}
	if !filepath.IsAbs(got) || got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}

	if _, err := uc.Locate(ctx, "Todos"); !errors.Is(err, apperrors.ErrUnknownType) {
		t.Fatalf("locate with wrong case: expected unknown type, got %v", err)
	}
	loc, err := uc.Locate(ctx, "todos")
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if loc.Path != filepath.Join(dir, "todos.json") || loc.Size != int64(len(`{"lists": []}`)) {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestWatchWithoutWatcherFails(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	if _, err := uc.Watch(context.Background()); err == nil {
		t.Fatalf("expected error without watcher")
	}
}
