package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	backupout "focusdesk/internal/modules/backup/adapter/out"
	"focusdesk/internal/modules/backup/dto"
	backupin "focusdesk/internal/modules/backup/port/in"
	"focusdesk/internal/modules/backup/service"
	"focusdesk/internal/modules/backup/usecase"
	documentout "focusdesk/internal/modules/document/adapter/out"
	documentdto "focusdesk/internal/modules/document/dto"
	documentin "focusdesk/internal/modules/document/port/in"
	documentservice "focusdesk/internal/modules/document/service"
	documentusecase "focusdesk/internal/modules/document/usecase"
	apperrors "focusdesk/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fixture struct {
	dataDir   string
	documents documentin.Usecase
	backups   backupin.Usecase
	clock     *fakeClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dataDir := filepath.Join(t.TempDir(), "focusdesk")
	backupDir := filepath.Join(dataDir, "backups")

	docs := documentusecase.NewInteractor(documentservice.NewDocumentService(
		documentout.NewFileDocumentStore(dataDir), nil, nil,
	))
	catalog := backupout.NewSQLiteCatalog(filepath.Join(backupDir, "catalog.db"))
	clk := &fakeClock{now: time.Date(2024, 5, 17, 14, 3, 9, 0, time.Local)}
	svc := service.NewBackupService(
		clk,
		backupout.NewDocumentSourceAdapter(docs),
		backupout.NewFileSnapshotStore(backupDir),
		catalog,
		nil,
	)
	return fixture{dataDir: dataDir, documents: docs, backups: usecase.NewInteractor(svc), clock: clk}
}

func folderEntries(t *testing.T, folder string) []string {
	t.Helper()
	entries, err := os.ReadDir(folder)
	if err != nil {
		t.Fatalf("read backup folder: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func TestCreateBackupWithOnlyProfiles(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	ctx := context.Background()

	profiles, err := fx.documents.Read(ctx, documentdto.ReadInput{Name: "profiles"})
	if err != nil {
		t.Fatalf("seed profiles: %v", err)
	}

	out, err := fx.backups.Create(ctx, dto.CreateInput{Name: "daily"})
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	want := filepath.Join(fx.dataDir, "backups", "daily_20240517_140309")
	if out.Folder != want {
		t.Fatalf("expected folder %s, got %s", want, out.Folder)
	}
	entries := folderEntries(t, out.Folder)
	if len(entries) != 1 || entries[0] != "profiles.json" {
		t.Fatalf("expected only profiles.json, got %v", entries)
	}
	raw, err := os.ReadFile(filepath.Join(out.Folder, "profiles.json"))
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(raw) != profiles.Content {
		t.Fatalf("backup copy is not byte identical")
	}
}

func TestCreateBackupCopiesAllDocuments(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	ctx := context.Background()

	for _, name := range fx.documents.Names() {
		if err := fx.documents.Write(ctx, documentdto.WriteInput{Name: name, Content: `{"doc":"` + name + `"}`}); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	out, err := fx.backups.Create(ctx, dto.CreateInput{Name: "full"})
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	entries := folderEntries(t, out.Folder)
	want := []string{"activities.json", "profiles.json", "settings.json", "todos.json"}
	if len(entries) != len(want) {
		t.Fatalf("expected %v, got %v", want, entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, entries)
		}
	}
	if len(out.Documents) != 4 {
		t.Fatalf("expected four captured documents, got %v", out.Documents)
	}
}

func TestCreateBackupRejectsBadNames(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	for _, name := range []string{"", "../escape", "a/b"} {
		if _, err := fx.backups.Create(context.Background(), dto.CreateInput{Name: name}); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%q: expected invalid input, got %v", name, err)
		}
	}
}

func TestListAndReindex(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	ctx := context.Background()

	if _, err := fx.documents.Read(ctx, documentdto.ReadInput{Name: "settings"}); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	first, err := fx.backups.Create(ctx, dto.CreateInput{Name: "morning"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	fx.clock.now = fx.clock.now.Add(time.Hour)
	if _, err := fx.backups.Create(ctx, dto.CreateInput{Name: "noon"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	listed, err := fx.backups.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].Name != "noon" || listed[1].Name != "morning" {
		t.Fatalf("unexpected listing %+v", listed)
	}
	if len(listed[1].Documents) != 1 || listed[1].Documents[0] != "settings" {
		t.Fatalf("unexpected documents %v", listed[1].Documents)
	}

	if err := os.RemoveAll(first.Folder); err != nil {
		t.Fatalf("remove first backup: %v", err)
	}
	reindexed, err := fx.backups.Reindex(ctx)
	if err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if reindexed.Count != 1 {
		t.Fatalf("expected one backup after reindex, got %d", reindexed.Count)
	}
	listed, err = fx.backups.List(ctx)
	if err != nil {
		t.Fatalf("list after reindex: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "noon" {
		t.Fatalf("unexpected listing after reindex %+v", listed)
	}
}
