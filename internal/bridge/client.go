package bridge

import (
	"context"
	"errors"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"focusdesk/internal/platform/events"
)

const callTimeout = 10 * time.Second

// Client calls a running bridge. Each call dials a fresh connection. The
// client remembers the IDs of the last drained events and acknowledges them
// with the next Drain or Ack.
type Client struct {
	socketPath string

	mu      sync.Mutex
	unacked []string
}

func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

func (c *Client) Read(ctx context.Context, document string) (string, error) {
	resp := DocumentReply{}
	if err := c.call(ctx, 0, "App.Read"+methodSuffix(document), Empty{}, &resp); err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (c *Client) Write(ctx context.Context, document, data string) error {
	return c.call(ctx, 0, "App.Write"+methodSuffix(document), WriteArgs{Data: data}, &Empty{})
}

func (c *Client) ExportData(ctx context.Context, dataType, path string) error {
	return c.call(ctx, 0, "App.ExportData", TransferArgs{Type: dataType, Path: path}, &Empty{})
}

func (c *Client) ImportData(ctx context.Context, dataType, path string) error {
	return c.call(ctx, 0, "App.ImportData", TransferArgs{Type: dataType, Path: path}, &Empty{})
}

func (c *Client) GetAppDataDir(ctx context.Context) (string, error) {
	resp := PathReply{}
	if err := c.call(ctx, 0, "App.GetAppDataDir", Empty{}, &resp); err != nil {
		return "", err
	}
	return resp.Path, nil
}

func (c *Client) ResetAllData(ctx context.Context) error {
	return c.call(ctx, 0, "App.ResetAllData", Empty{}, &Empty{})
}

func (c *Client) BackupData(ctx context.Context, name string) (string, error) {
	resp := PathReply{}
	if err := c.call(ctx, 0, "App.BackupData", BackupArgs{Name: name}, &resp); err != nil {
		return "", err
	}
	return resp.Path, nil
}

func (c *Client) SetAlwaysOnTop(ctx context.Context, enabled bool) error {
	return c.call(ctx, 0, "App.SetAlwaysOnTop", AlwaysOnTopArgs{Enabled: enabled}, &Empty{})
}

func (c *Client) MinimizeToTray(ctx context.Context) error {
	return c.call(ctx, 0, "App.MinimizeToTray", Empty{}, &Empty{})
}

func (c *Client) ShowNotification(ctx context.Context, title, body string) error {
	return c.call(ctx, 0, "App.ShowNotification", NotificationArgs{Title: title, Body: body}, &Empty{})
}

func (c *Client) RequestNotificationPermission(ctx context.Context) (bool, error) {
	resp := PermissionReply{}
	if err := c.call(ctx, 0, "App.RequestNotificationPermission", Empty{}, &resp); err != nil {
		return false, err
	}
	return resp.Granted, nil
}

// DispatchTray sends a tray event. A quit may take the server down before it
// replies; a dropped connection is reported as a successful quit.
func (c *Client) DispatchTray(ctx context.Context, event string) (TrayReply, error) {
	resp := TrayReply{}
	err := c.call(ctx, 0, "Tray.Dispatch", TrayArgs{Event: event}, &resp)
	if err != nil {
		if event == "quit" && (errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, rpc.ErrShutdown)) {
			return TrayReply{Quit: true}, nil
		}
		return TrayReply{}, err
	}
	return resp, nil
}

func (c *Client) TrayMenu(ctx context.Context) ([]MenuItem, error) {
	resp := MenuReply{}
	if err := c.call(ctx, 0, "Tray.Menu", Empty{}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) SocketPath() string { return c.socketPath }

func (c *Client) DrainEvents(ctx context.Context, wait time.Duration) ([]events.Event, error) {
	c.mu.Lock()
	ack := c.unacked
	c.mu.Unlock()

	resp := DrainReply{}
	args := DrainArgs{WaitMillis: int(wait / time.Millisecond), Ack: ack}
	if err := c.call(ctx, wait, "Events.Drain", args, &resp); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(resp.Events))
	for _, evt := range resp.Events {
		ids = append(ids, evt.ID)
	}
	c.mu.Lock()
	c.unacked = ids
	c.mu.Unlock()
	return resp.Events, nil
}

// AckEvents acknowledges everything returned by the last DrainEvents.
func (c *Client) AckEvents(ctx context.Context) error {
	c.mu.Lock()
	ack := c.unacked
	c.mu.Unlock()
	if len(ack) == 0 {
		return nil
	}
	if err := c.call(ctx, 0, "Events.Ack", AckArgs{IDs: ack}, &Empty{}); err != nil {
		return err
	}
	c.mu.Lock()
	c.unacked = nil
	c.mu.Unlock()
	return nil
}

func (c *Client) call(ctx context.Context, extra time.Duration, method string, args, reply any) error {
	client, err := dialClient(ctx, c.socketPath, extra)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Call(method, args, reply)
}

func dialClient(ctx context.Context, socketPath string, extra time.Duration) (*rpc.Client, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, err
	}
	_ = conn.SetDeadline(time.Now().Add(callTimeout + extra))
	return rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn)), nil
}

func methodSuffix(document string) string {
	switch document {
	case "profiles":
		return "Profiles"
	case "activities":
		return "Activities"
	case "settings":
		return "Settings"
	case "todos":
		return "Todos"
	default:
		return document
	}
}
