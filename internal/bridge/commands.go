package bridge

import (
	"context"

	backupinadapter "focusdesk/internal/modules/backup/adapter/in"
	documentinadapter "focusdesk/internal/modules/document/adapter/in"
	notifyinadapter "focusdesk/internal/modules/notify/adapter/in"
	transferinadapter "focusdesk/internal/modules/transfer/adapter/in"
	trayinadapter "focusdesk/internal/modules/tray/adapter/in"
	traydto "focusdesk/internal/modules/tray/dto"
	windowinadapter "focusdesk/internal/modules/window/adapter/in"
)

// Commands is the command surface a frontend calls. The RPC server, the MCP
// server and the terminal UI all go through it.
type Commands struct {
	Documents documentinadapter.CLIHandler
	Transfers transferinadapter.CLIHandler
	Backups   backupinadapter.CLIHandler
	Windows   windowinadapter.CLIHandler
	Notifier  notifyinadapter.CLIHandler
	Tray      trayinadapter.CLIHandler
}

func (c Commands) ReadProfiles(ctx context.Context) (string, error) {
	return c.Documents.Read(ctx, "profiles")
}

func (c Commands) WriteProfiles(ctx context.Context, data string) error {
	return c.Documents.Write(ctx, "profiles", data)
}

func (c Commands) ReadActivities(ctx context.Context) (string, error) {
	return c.Documents.Read(ctx, "activities")
}

func (c Commands) WriteActivities(ctx context.Context, data string) error {
	return c.Documents.Write(ctx, "activities", data)
}

func (c Commands) ReadSettings(ctx context.Context) (string, error) {
	return c.Documents.Read(ctx, "settings")
}

func (c Commands) WriteSettings(ctx context.Context, data string) error {
	return c.Documents.Write(ctx, "settings", data)
}

func (c Commands) ReadTodos(ctx context.Context) (string, error) {
	return c.Documents.Read(ctx, "todos")
}

func (c Commands) WriteTodos(ctx context.Context, data string) error {
	return c.Documents.Write(ctx, "todos", data)
}

func (c Commands) ExportData(ctx context.Context, dataType, path string) error {
	_, err := c.Transfers.Export(ctx, dataType, path)
	return err
}

func (c Commands) ImportData(ctx context.Context, dataType, path string) error {
	_, err := c.Transfers.Import(ctx, dataType, path)
	return err
}

func (c Commands) GetAppDataDir(ctx context.Context) (string, error) {
	return c.Documents.DataDir(ctx)
}

func (c Commands) ResetAllData(ctx context.Context) error {
	return c.Documents.ResetAll(ctx)
}

func (c Commands) BackupData(ctx context.Context, name string) (string, error) {
	out, err := c.Backups.Create(ctx, name)
	if err != nil {
		return "", err
	}
	return out.Folder, nil
}

func (c Commands) SetAlwaysOnTop(ctx context.Context, enabled bool) error {
	return c.Windows.SetAlwaysOnTop(ctx, enabled)
}

func (c Commands) MinimizeToTray(ctx context.Context) error {
	return c.Windows.MinimizeToTray(ctx)
}

func (c Commands) ShowNotification(ctx context.Context, title, body string) error {
	return c.Notifier.Show(ctx, title, body)
}

func (c Commands) RequestNotificationPermission(ctx context.Context) (bool, error) {
	return c.Notifier.RequestPermission(ctx)
}

func (c Commands) DispatchTray(ctx context.Context, event string) (traydto.OutcomeOutput, error) {
	return c.Tray.Dispatch(ctx, event)
}

func (c Commands) TrayMenu() []traydto.MenuItemOutput {
	return c.Tray.Menu()
}
