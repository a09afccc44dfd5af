package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"focusdesk/internal/bridge"
	backupinadapter "focusdesk/internal/modules/backup/adapter/in"
	backupoutadapter "focusdesk/internal/modules/backup/adapter/out"
	backupservice "focusdesk/internal/modules/backup/service"
	backupusecase "focusdesk/internal/modules/backup/usecase"
	documentinadapter "focusdesk/internal/modules/document/adapter/in"
	documentoutadapter "focusdesk/internal/modules/document/adapter/out"
	documentservice "focusdesk/internal/modules/document/service"
	documentusecase "focusdesk/internal/modules/document/usecase"
	transferinadapter "focusdesk/internal/modules/transfer/adapter/in"
	transferoutadapter "focusdesk/internal/modules/transfer/adapter/out"
	transferservice "focusdesk/internal/modules/transfer/service"
	transferusecase "focusdesk/internal/modules/transfer/usecase"
	"focusdesk/internal/platform/clock"
	"focusdesk/internal/platform/logging"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dataDir := t.TempDir()
	log := logging.Discard()
	documents := documentusecase.NewInteractor(documentservice.NewDocumentService(
		documentoutadapter.NewFileDocumentStore(dataDir), nil, log))
	catalog := backupoutadapter.NewSQLiteCatalog(filepath.Join(dataDir, "backups", "catalog.db"))
	t.Cleanup(func() { _ = catalog.Close() })
	backups := backupusecase.NewInteractor(backupservice.NewBackupService(
		clock.SystemClock{},
		backupoutadapter.NewDocumentSourceAdapter(documents),
		backupoutadapter.NewFileSnapshotStore(filepath.Join(dataDir, "backups")),
		catalog,
		log,
	))
	transfers := transferusecase.NewInteractor(transferservice.NewTransferService(
		transferoutadapter.NewDocumentAccessAdapter(documents),
		transferoutadapter.NewOSFiles(),
		log,
	))
	cmds := bridge.Commands{
		Documents: documentinadapter.NewCLIHandler(documents),
		Backups:   backupinadapter.NewCLIHandler(backups),
		Transfers: transferinadapter.NewCLIHandler(transfers),
	}
	return New(cmds, "test", log), dataDir
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatalf("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestWriteThenReadDocument(t *testing.T) {
	t.Parallel()
	srv, dataDir := newTestServer(t)
	payload := `{"timerMinutes":25,"theme":"dark"}`

	if text, isErr := call(t, srv.handleWriteDocument, map[string]any{"name": "settings", "content": payload}); isErr {
		t.Fatalf("write failed: %s", text)
	}
	text, isErr := call(t, srv.handleReadDocument, map[string]any{"name": "settings"})
	if isErr || text != payload {
		t.Fatalf("read = %q (error=%v), want %q", text, isErr, payload)
	}
	raw, err := os.ReadFile(filepath.Join(dataDir, "settings.json"))
	if err != nil || string(raw) != payload {
		t.Fatalf("file content = %q, %v", raw, err)
	}
}

func TestWriteDocumentRejectsInvalidJSON(t *testing.T) {
	t.Parallel()
	srv, dataDir := newTestServer(t)

	_, isErr := call(t, srv.handleWriteDocument, map[string]any{"name": "todos", "content": "{not json"})
	if !isErr {
		t.Fatalf("expected tool error for invalid json")
	}
	if _, err := os.Stat(filepath.Join(dataDir, "todos.json")); !os.IsNotExist(err) {
		t.Fatalf("invalid content must not reach disk, stat err=%v", err)
	}
}

func TestReadUnknownDocumentIsToolError(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	text, isErr := call(t, srv.handleReadDocument, map[string]any{"name": "notes"})
	if !isErr || !strings.Contains(text, "notes") {
		t.Fatalf("expected unknown type error, got %q (error=%v)", text, isErr)
	}
	if _, isErr := call(t, srv.handleReadDocument, map[string]any{}); !isErr {
		t.Fatalf("expected error for missing name")
	}
}

func TestStatusReportsDataDir(t *testing.T) {
	t.Parallel()
	srv, dataDir := newTestServer(t)
	if _, isErr := call(t, srv.handleReadDocument, map[string]any{"name": "profiles"}); isErr {
		t.Fatalf("seed profiles failed")
	}

	text, isErr := call(t, srv.handleStatus, nil)
	if isErr {
		t.Fatalf("status failed: %s", text)
	}
	var payload statusPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	abs, _ := filepath.Abs(dataDir)
	if payload.DataDir != abs {
		t.Fatalf("dataDir = %q, want %q", payload.DataDir, abs)
	}
	if len(payload.Documents) != 4 {
		t.Fatalf("expected 4 documents, got %d", len(payload.Documents))
	}
	for _, doc := range payload.Documents {
		if doc.Name == "profiles" && !doc.Exists {
			t.Fatalf("profiles should exist after first read")
		}
		if doc.Name == "todos" && doc.Exists {
			t.Fatalf("todos should not exist")
		}
	}
}

func TestBackupToolsCreateAndList(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)
	if _, isErr := call(t, srv.handleWriteDocument, map[string]any{"name": "profiles", "content": `[]`}); isErr {
		t.Fatalf("write profiles failed")
	}

	text, isErr := call(t, srv.handleCreateBackup, map[string]any{"name": "nightly"})
	if isErr || !strings.Contains(text, "nightly_") {
		t.Fatalf("create backup = %q (error=%v)", text, isErr)
	}
	if _, isErr := call(t, srv.handleCreateBackup, map[string]any{"name": "../escape"}); !isErr {
		t.Fatalf("expected error for name with separator")
	}

	text, isErr = call(t, srv.handleListBackups, nil)
	if isErr {
		t.Fatalf("list backups failed: %s", text)
	}
	var listed struct {
		Count   int           `json:"count"`
		Backups []backupEntry `json:"backups"`
	}
	if err := json.Unmarshal([]byte(text), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listed.Count != 1 || listed.Backups[0].Name != "nightly" {
		t.Fatalf("unexpected backups: %+v", listed)
	}
	if len(listed.Backups[0].Documents) != 1 || listed.Backups[0].Documents[0] != "profiles" {
		t.Fatalf("expected only profiles, got %v", listed.Backups[0].Documents)
	}
}

func TestExportImportTools(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)
	external := filepath.Join(t.TempDir(), "todos-export.json")
	if _, isErr := call(t, srv.handleWriteDocument, map[string]any{"name": "todos", "content": `[{"id":"1"}]`}); isErr {
		t.Fatalf("write todos failed")
	}

	if text, isErr := call(t, srv.handleExport, map[string]any{"type": "todos", "path": external}); isErr {
		t.Fatalf("export failed: %s", text)
	}
	if err := os.WriteFile(external, []byte(`[{"id":"2"}]`), 0o644); err != nil {
		t.Fatalf("rewrite export: %v", err)
	}
	if text, isErr := call(t, srv.handleImport, map[string]any{"type": "todos", "path": external}); isErr {
		t.Fatalf("import failed: %s", text)
	}
	text, _ := call(t, srv.handleReadDocument, map[string]any{"name": "todos"})
	if text != `[{"id":"2"}]` {
		t.Fatalf("todos after import = %q", text)
	}
}

func TestBuildRegistersServer(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)
	if srv.Build() == nil {
		t.Fatalf("expected mcp server")
	}
}
