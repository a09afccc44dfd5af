package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	"focusdesk/internal/bridge"
	"focusdesk/internal/mcpserver"
	backupinadapter "focusdesk/internal/modules/backup/adapter/in"
	backupoutadapter "focusdesk/internal/modules/backup/adapter/out"
	backupout "focusdesk/internal/modules/backup/port/out"
	backupservice "focusdesk/internal/modules/backup/service"
	backupusecase "focusdesk/internal/modules/backup/usecase"
	documentinadapter "focusdesk/internal/modules/document/adapter/in"
	documentoutadapter "focusdesk/internal/modules/document/adapter/out"
	documentservice "focusdesk/internal/modules/document/service"
	documentusecase "focusdesk/internal/modules/document/usecase"
	notifyinadapter "focusdesk/internal/modules/notify/adapter/in"
	notifyoutadapter "focusdesk/internal/modules/notify/adapter/out"
	notifyout "focusdesk/internal/modules/notify/port/out"
	notifyservice "focusdesk/internal/modules/notify/service"
	notifyusecase "focusdesk/internal/modules/notify/usecase"
	transferinadapter "focusdesk/internal/modules/transfer/adapter/in"
	transferoutadapter "focusdesk/internal/modules/transfer/adapter/out"
	transferservice "focusdesk/internal/modules/transfer/service"
	transferusecase "focusdesk/internal/modules/transfer/usecase"
	trayinadapter "focusdesk/internal/modules/tray/adapter/in"
	trayoutadapter "focusdesk/internal/modules/tray/adapter/out"
	trayout "focusdesk/internal/modules/tray/port/out"
	trayservice "focusdesk/internal/modules/tray/service"
	trayusecase "focusdesk/internal/modules/tray/usecase"
	windowinadapter "focusdesk/internal/modules/window/adapter/in"
	windowoutadapter "focusdesk/internal/modules/window/adapter/out"
	windowdomain "focusdesk/internal/modules/window/domain"
	windowservice "focusdesk/internal/modules/window/service"
	windowusecase "focusdesk/internal/modules/window/usecase"
	"focusdesk/internal/platform/clock"
	"focusdesk/internal/platform/config"
	"focusdesk/internal/platform/events"
	"focusdesk/internal/platform/id"
	uiapp "focusdesk/internal/ui/app"
)

// DocumentsChangedEvent is published when a document file changes on disk.
const DocumentsChangedEvent = "documents-changed"

type App struct {
	Config  config.Config
	Log     hclog.Logger
	Bus     *events.Bus
	Windows *windowoutadapter.WindowRegistry

	DocumentCLI documentinadapter.CLIHandler
	BackupCLI   backupinadapter.CLIHandler
	TransferCLI transferinadapter.CLIHandler
	WindowCLI   windowinadapter.CLIHandler
	NotifyCLI   notifyinadapter.CLIHandler
	TrayCLI     trayinadapter.CLIHandler

	Commands bridge.Commands

	catalog backupout.Catalog
	quit    *quitSwitch
}

// Options overrides adapters that touch the desktop. Zero values select the
// OS implementations.
type Options struct {
	Notifier   notifyout.Notifier
	Terminator trayout.Terminator
}

func New(cfg config.Config, log hclog.Logger, opts Options) (*App, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data dir is required")
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	clk := clock.SystemClock{}
	bus := events.NewBus(id.UUID{}, clk)

	documentUC := documentusecase.NewInteractor(documentservice.NewDocumentService(
		documentoutadapter.NewFileDocumentStore(cfg.DataDir),
		documentoutadapter.NewFSChangeWatcher(cfg.DataDir, log.Named("watch")),
		log.Named("documents"),
	))

	catalog := backupoutadapter.NewSQLiteCatalog(cfg.CatalogPath)
	backupUC := backupusecase.NewInteractor(backupservice.NewBackupService(
		clk,
		backupoutadapter.NewDocumentSourceAdapter(documentUC),
		backupoutadapter.NewFileSnapshotStore(cfg.BackupDir),
		catalog,
		log.Named("backup"),
	))

	transferUC := transferusecase.NewInteractor(transferservice.NewTransferService(
		transferoutadapter.NewDocumentAccessAdapter(documentUC),
		transferoutadapter.NewOSFiles(),
		log.Named("transfer"),
	))

	windows := windowoutadapter.NewWindowRegistry()
	windowUC := windowusecase.NewInteractor(windowservice.NewWindowService(windows))

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notifyoutadapter.NewOSNotifier("focusdesk")
	}
	notifyUC := notifyusecase.NewInteractor(notifyservice.NewNotifyService(notifier, log.Named("notify")))

	app := &App{
		Config:  cfg,
		Log:     log,
		Bus:     bus,
		Windows: windows,
		catalog: catalog,
	}
	app.quit = &quitSwitch{target: opts.Terminator}
	if app.quit.target == nil {
		app.quit.target = trayoutadapter.NewProcessTerminator(func() {
			if err := app.Close(); err != nil {
				log.Warn("close on quit", "error", err)
			}
		})
	}
	trayUC := trayusecase.NewInteractor(trayservice.NewTrayService(
		trayoutadapter.NewWindowControlAdapter(windowUC),
		bus,
		app.quit,
		log.Named("tray"),
	))

	app.DocumentCLI = documentinadapter.NewCLIHandler(documentUC)
	app.BackupCLI = backupinadapter.NewCLIHandler(backupUC)
	app.TransferCLI = transferinadapter.NewCLIHandler(transferUC)
	app.WindowCLI = windowinadapter.NewCLIHandler(windowUC)
	app.NotifyCLI = notifyinadapter.NewCLIHandler(notifyUC)
	app.TrayCLI = trayinadapter.NewCLIHandler(trayUC)
	app.Commands = bridge.Commands{
		Documents: app.DocumentCLI,
		Transfers: app.TransferCLI,
		Backups:   app.BackupCLI,
		Windows:   app.WindowCLI,
		Notifier:  app.NotifyCLI,
		Tray:      app.TrayCLI,
	}
	return app, nil
}

// OpenMainWindow attaches the headless main window, as the desktop shell does
// at startup.
func (a *App) OpenMainWindow(visible bool) *windowoutadapter.MemoryWindow {
	window := windowoutadapter.NewMemoryWindow(windowdomain.MainLabel, visible)
	a.Windows.Attach(windowdomain.MainLabel, window)
	return window
}

// OnQuit routes the tray quit action to fn instead of exiting the process.
func (a *App) OnQuit(fn func(code int)) {
	a.quit.set(trayoutadapter.FuncTerminator(fn))
}

func (a *App) Close() error {
	return a.catalog.Close()
}

// ForwardDocumentChanges publishes a documents-changed event for every
// change the watcher reports until ctx is done.
func (a *App) ForwardDocumentChanges(ctx context.Context) error {
	changes, err := a.DocumentCLI.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for change := range changes {
			payload := map[string]string{"name": change.Name, "op": change.Op}
			if err := a.Bus.Publish(DocumentsChangedEvent, payload); err != nil {
				a.Log.Warn("publish document change", "error", err)
			}
		}
	}()
	return nil
}

type quitSwitch struct {
	mu     sync.Mutex
	target trayout.Terminator
}

func (q *quitSwitch) set(target trayout.Terminator) {
	q.mu.Lock()
	q.target = target
	q.mu.Unlock()
}

func (q *quitSwitch) Terminate(code int) {
	q.mu.Lock()
	target := q.target
	q.mu.Unlock()
	target.Terminate(code)
}

// RunBridge serves the command surface on the configured socket until ctx
// is done or the tray quits.
func RunBridge(ctx context.Context, app *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.OpenMainWindow(true)
	app.OnQuit(func(int) { cancel() })
	sub := app.Bus.Subscribe()
	defer sub.Close()
	if err := app.ForwardDocumentChanges(ctx); err != nil {
		app.Log.Warn("document watch disabled", "error", err)
	}
	return bridge.NewServer(app.Commands, sub, app.Log.Named("bridge")).Serve(ctx, app.Config.SocketPath)
}

func RunMCP(ctx context.Context, app *App, version string) error {
	return mcpserver.New(app.Commands, version, app.Log.Named("mcp")).ServeStdio(ctx)
}

func RunTUI(ctx context.Context, app *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.OpenMainWindow(true)
	sub := app.Bus.Subscribe()
	defer sub.Close()
	if err := app.ForwardDocumentChanges(ctx); err != nil {
		app.Log.Warn("document watch disabled", "error", err)
	}

	model := uiapp.NewModel(
		app.Config.DataDir,
		app.DocumentCLI,
		app.BackupCLI,
		app.TrayCLI,
		app.WindowCLI,
		app.Commands,
		sub,
	)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	app.OnQuit(func(int) { program.Quit() })
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
