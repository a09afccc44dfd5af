package bridge_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"focusdesk/internal/bootstrap"
	"focusdesk/internal/bridge"
	notifydomain "focusdesk/internal/modules/notify/domain"
	"focusdesk/internal/platform/config"
	"focusdesk/internal/platform/events"
	"focusdesk/internal/platform/logging"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notifydomain.Notification
}

func (n *recordingNotifier) Send(_ context.Context, notification notifydomain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	return nil
}

func (n *recordingNotifier) Permitted(context.Context) (bool, error) { return true, nil }

type codes struct {
	mu  sync.Mutex
	got []int
}

func (c *codes) Terminate(code int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, code)
}

func (c *codes) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.got)
}

type harness struct {
	app      *bootstrap.App
	client   *bridge.Client
	notifier *recordingNotifier
	quits    *codes
	dataDir  string
}

// startBridge runs a bridge over a fresh data dir. beforeServe runs after the
// subscription exists and before the server starts.
func startBridge(t *testing.T, beforeServe ...func(*bootstrap.App)) harness {
	t.Helper()
	dataDir := t.TempDir()
	cfg, err := config.New(dataDir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	// keep the socket path short for sun_path limits
	sockDir, err := os.MkdirTemp("", "fd")
	if err != nil {
		t.Fatalf("socket dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(sockDir) })
	cfg.SocketPath = filepath.Join(sockDir, "b.sock")

	h := harness{notifier: &recordingNotifier{}, quits: &codes{}, dataDir: cfg.DataDir}
	app, err := bootstrap.New(cfg, logging.Discard(), bootstrap.Options{Notifier: h.notifier, Terminator: h.quits})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	app.OpenMainWindow(true)
	h.app = app

	sub := app.Bus.Subscribe()
	t.Cleanup(sub.Close)
	for _, fn := range beforeServe {
		fn(app)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- bridge.NewServer(app.Commands, sub, logging.Discard()).Serve(ctx, cfg.SocketPath)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Errorf("bridge did not stop")
		}
	})

	h.client = bridge.NewClient(cfg.SocketPath)
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := h.client.GetAppDataDir(context.Background()); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("bridge never became ready")
		}
		time.Sleep(20 * time.Millisecond)
	}
	return h
}

func TestBridgeDocumentRoundTrip(t *testing.T) {
	t.Parallel()
	h := startBridge(t)
	ctx := context.Background()

	for _, name := range []string{"profiles", "activities", "settings", "todos"} {
		payload := `{"doc":"` + name + `"}`
		if err := h.client.Write(ctx, name, payload); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		got, err := h.client.Read(ctx, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if got != payload {
			t.Fatalf("%s = %q, want %q", name, got, payload)
		}
	}

	dir, err := h.client.GetAppDataDir(ctx)
	if err != nil || dir != h.dataDir {
		t.Fatalf("data dir = %q, %v; want %q", dir, err, h.dataDir)
	}
}

func TestBridgeActivitiesDefaultNotPersisted(t *testing.T) {
	t.Parallel()
	h := startBridge(t)

	got, err := h.client.Read(context.Background(), "activities")
	if err != nil || got != "[]" {
		t.Fatalf("activities = %q, %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(h.dataDir, "activities.json")); !os.IsNotExist(err) {
		t.Fatalf("activities default must not be written, stat err=%v", err)
	}
}

func TestBridgeBackupAndReset(t *testing.T) {
	t.Parallel()
	h := startBridge(t)
	ctx := context.Background()
	if err := h.client.Write(ctx, "settings", `{"a":1}`); err != nil {
		t.Fatalf("write: %v", err)
	}

	folder, err := h.client.BackupData(ctx, "before-reset")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if _, err := os.Stat(filepath.Join(folder, "settings.json")); err != nil {
		t.Fatalf("backup missing settings: %v", err)
	}
	if _, err := h.client.BackupData(ctx, "a/b"); err == nil {
		t.Fatalf("expected error for backup name with separator")
	}

	if err := h.client.ResetAllData(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := os.Stat(filepath.Join(h.dataDir, "settings.json")); !os.IsNotExist(err) {
		t.Fatalf("settings should be gone after reset, stat err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(folder, "settings.json")); err != nil {
		t.Fatalf("reset must not touch backups: %v", err)
	}
}

func TestBridgeImportRejectsInvalidJSON(t *testing.T) {
	t.Parallel()
	h := startBridge(t)
	ctx := context.Background()
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{oops"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := h.client.ImportData(ctx, "todos", bad); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := h.client.ImportData(ctx, "notes", bad); err == nil {
		t.Fatalf("expected unknown type error")
	}
	if err := h.client.ExportData(ctx, "todos", filepath.Join(t.TempDir(), "out.json")); err == nil {
		t.Fatalf("expected not found exporting a document that was never written")
	}
}

func TestBridgeWindowAndNotifications(t *testing.T) {
	t.Parallel()
	h := startBridge(t)
	ctx := context.Background()

	if err := h.client.SetAlwaysOnTop(ctx, true); err != nil {
		t.Fatalf("always on top: %v", err)
	}
	state, err := h.app.WindowCLI.State(ctx)
	if err != nil || !state.AlwaysOnTop {
		t.Fatalf("window state = %+v, %v", state, err)
	}
	if err := h.client.MinimizeToTray(ctx); err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if state, _ := h.app.WindowCLI.State(ctx); state.Visible {
		t.Fatalf("window should be hidden after minimize")
	}

	if err := h.client.ShowNotification(ctx, "Break over", "Back to work"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := h.client.ShowNotification(ctx, "", "no title"); err == nil {
		t.Fatalf("expected error for empty title")
	}
	granted, err := h.client.RequestNotificationPermission(ctx)
	if err != nil || !granted {
		t.Fatalf("permission = %v, %v", granted, err)
	}
	h.notifier.mu.Lock()
	defer h.notifier.mu.Unlock()
	if len(h.notifier.sent) != 1 || h.notifier.sent[0].Title != "Break over" {
		t.Fatalf("unexpected notifications: %+v", h.notifier.sent)
	}
}

func TestBridgeTrayEmitsEvents(t *testing.T) {
	t.Parallel()
	h := startBridge(t)
	ctx := context.Background()
	if err := h.client.MinimizeToTray(ctx); err != nil {
		t.Fatalf("minimize: %v", err)
	}

	out, err := h.client.DispatchTray(ctx, "start_focus")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !out.Shown || out.Published != "start-focus" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	evts, err := h.client.DrainEvents(ctx, time.Second)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(evts) != 1 || evts[0].Name != "start-focus" {
		t.Fatalf("expected one start-focus event, got %+v", evts)
	}
	if state, _ := h.app.WindowCLI.State(ctx); !state.Visible || !state.Focused {
		t.Fatalf("window should be shown and focused: %+v", state)
	}

	items, err := h.client.TrayMenu(ctx)
	if err != nil || len(items) != 6 {
		t.Fatalf("menu = %+v, %v", items, err)
	}
}

func TestBridgeKeepsEventsPublishedBeforeServe(t *testing.T) {
	t.Parallel()
	h := startBridge(t, func(app *bootstrap.App) {
		if err := app.Bus.Publish("documents-changed", map[string]string{"document": "todos"}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	})
	evts, err := h.client.DrainEvents(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(evts) != 1 || evts[0].Name != "documents-changed" {
		t.Fatalf("expected the early documents-changed event, got %+v", evts)
	}
}

func TestBridgeRedeliversUntilAcknowledged(t *testing.T) {
	t.Parallel()
	h := startBridge(t)
	ctx := context.Background()
	if _, err := h.client.DispatchTray(ctx, "start_focus"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	first, err := h.client.DrainEvents(ctx, time.Second)
	if err != nil || len(first) != 1 {
		t.Fatalf("first drain = %+v, %v", first, err)
	}
	// a second consumer that never saw the reply still gets the event
	other := bridge.NewClient(h.client.SocketPath())
	again, err := other.DrainEvents(ctx, 0)
	if err != nil || len(again) != 1 || again[0].ID != first[0].ID {
		t.Fatalf("unacknowledged event not redelivered: %+v, %v", again, err)
	}

	if err := h.client.AckEvents(ctx); err != nil {
		t.Fatalf("ack: %v", err)
	}
	left, err := other.DrainEvents(ctx, 0)
	if err != nil || len(left) != 0 {
		t.Fatalf("acknowledged event delivered again: %+v, %v", left, err)
	}
}

func TestEventServiceDropsAcknowledgedIDs(t *testing.T) {
	t.Parallel()
	bus := events.NewBus(nil, nil)
	sub := bus.Subscribe()
	t.Cleanup(sub.Close)
	svc := bridge.NewEventService(sub)

	for _, name := range []string{"start-focus", "start-break"} {
		if err := bus.Publish(name, nil); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}
	var reply bridge.DrainReply
	if err := svc.Drain(bridge.DrainArgs{}, &reply); err != nil || len(reply.Events) != 2 {
		t.Fatalf("drain = %+v, %v", reply.Events, err)
	}
	firstID := reply.Events[0].ID

	reply = bridge.DrainReply{}
	if err := svc.Drain(bridge.DrainArgs{Ack: []string{firstID}}, &reply); err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(reply.Events) != 1 || reply.Events[0].Name != "start-break" {
		t.Fatalf("expected only the unacknowledged event, got %+v", reply.Events)
	}

	if err := svc.Ack(bridge.AckArgs{IDs: []string{reply.Events[0].ID}}, &bridge.Empty{}); err != nil {
		t.Fatalf("ack: %v", err)
	}
	reply = bridge.DrainReply{}
	if err := svc.Drain(bridge.DrainArgs{}, &reply); err != nil || len(reply.Events) != 0 {
		t.Fatalf("drain after ack = %+v, %v", reply.Events, err)
	}
}

func TestBridgeTrayQuitTerminates(t *testing.T) {
	t.Parallel()
	h := startBridge(t)

	out, err := h.client.DispatchTray(context.Background(), "quit")
	if err != nil {
		t.Fatalf("quit: %v", err)
	}
	if !out.Quit || h.quits.count() != 1 {
		t.Fatalf("quit outcome %+v, terminations %d", out, h.quits.count())
	}
	if _, err := h.client.DispatchTray(context.Background(), "bogus"); err == nil {
		t.Fatalf("expected error for unknown tray event")
	}
}

func TestClientReportsMissingServer(t *testing.T) {
	t.Parallel()
	client := bridge.NewClient(filepath.Join(t.TempDir(), "none.sock"))
	if _, err := client.GetAppDataDir(context.Background()); err == nil {
		t.Fatalf("expected dial error")
	}
}
