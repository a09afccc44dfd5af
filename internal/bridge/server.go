package bridge

import (
	"context"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"focusdesk/internal/platform/events"
)

const maxDrainWait = 30 * time.Second

type Empty struct{}

type DocumentReply struct {
	Content string
}

type WriteArgs struct {
	Data string
}

type TransferArgs struct {
	Type string
	Path string
}

type PathReply struct {
	Path string
}

type BackupArgs struct {
	Name string
}

type AlwaysOnTopArgs struct {
	Enabled bool
}

type NotificationArgs struct {
	Title string
	Body  string
}

type PermissionReply struct {
	Granted bool
}

type TrayArgs struct {
	Event string
}

type TrayReply struct {
	Shown     bool
	Hidden    bool
	Published string
	Quit      bool
	Skipped   bool
	Ignored   bool
}

type MenuItem struct {
	ID        string
	Label     string
	Separator bool
}

type MenuReply struct {
	Items []MenuItem
}

// DrainArgs.WaitMillis bounds how long Drain waits when nothing is queued.
// Ack lists event IDs the caller has handled; unacknowledged events are
// delivered again on the next Drain.
type DrainArgs struct {
	WaitMillis int
	Ack        []string
}

type AckArgs struct {
	IDs []string
}

type DrainReply struct {
	Events []events.Event
}

// AppService exposes the document, transfer, backup, window and notification
// commands as "App.<Command>".
type AppService struct {
	cmds Commands
}

func (s *AppService) ReadProfiles(_ Empty, resp *DocumentReply) error {
	return readInto(resp, s.cmds.ReadProfiles)
}

func (s *AppService) WriteProfiles(req WriteArgs, _ *Empty) error {
	return s.cmds.WriteProfiles(context.Background(), req.Data)
}

func (s *AppService) ReadActivities(_ Empty, resp *DocumentReply) error {
	return readInto(resp, s.cmds.ReadActivities)
}

func (s *AppService) WriteActivities(req WriteArgs, _ *Empty) error {
	return s.cmds.WriteActivities(context.Background(), req.Data)
}

func (s *AppService) ReadSettings(_ Empty, resp *DocumentReply) error {
	return readInto(resp, s.cmds.ReadSettings)
}

func (s *AppService) WriteSettings(req WriteArgs, _ *Empty) error {
	return s.cmds.WriteSettings(context.Background(), req.Data)
}

func (s *AppService) ReadTodos(_ Empty, resp *DocumentReply) error {
	return readInto(resp, s.cmds.ReadTodos)
}

func (s *AppService) WriteTodos(req WriteArgs, _ *Empty) error {
	return s.cmds.WriteTodos(context.Background(), req.Data)
}

func (s *AppService) ExportData(req TransferArgs, _ *Empty) error {
	return s.cmds.ExportData(context.Background(), req.Type, req.Path)
}

func (s *AppService) ImportData(req TransferArgs, _ *Empty) error {
	return s.cmds.ImportData(context.Background(), req.Type, req.Path)
}

func (s *AppService) GetAppDataDir(_ Empty, resp *PathReply) error {
	dir, err := s.cmds.GetAppDataDir(context.Background())
	if err != nil {
		return err
	}
	resp.Path = dir
	return nil
}

func (s *AppService) ResetAllData(_ Empty, _ *Empty) error {
	return s.cmds.ResetAllData(context.Background())
}

func (s *AppService) BackupData(req BackupArgs, resp *PathReply) error {
	path, err := s.cmds.BackupData(context.Background(), req.Name)
	if err != nil {
		return err
	}
	resp.Path = path
	return nil
}

func (s *AppService) SetAlwaysOnTop(req AlwaysOnTopArgs, _ *Empty) error {
	return s.cmds.SetAlwaysOnTop(context.Background(), req.Enabled)
}

func (s *AppService) MinimizeToTray(_ Empty, _ *Empty) error {
	return s.cmds.MinimizeToTray(context.Background())
}

func (s *AppService) ShowNotification(req NotificationArgs, _ *Empty) error {
	return s.cmds.ShowNotification(context.Background(), req.Title, req.Body)
}

func (s *AppService) RequestNotificationPermission(_ Empty, resp *PermissionReply) error {
	granted, err := s.cmds.RequestNotificationPermission(context.Background())
	if err != nil {
		return err
	}
	resp.Granted = granted
	return nil
}

func readInto(resp *DocumentReply, read func(context.Context) (string, error)) error {
	content, err := read(context.Background())
	if err != nil {
		return err
	}
	resp.Content = content
	return nil
}

type TrayService struct {
	cmds Commands
}

func (s *TrayService) Dispatch(req TrayArgs, resp *TrayReply) error {
	out, err := s.cmds.DispatchTray(context.Background(), req.Event)
	if err != nil {
		return err
	}
	*resp = TrayReply{
		Shown:     out.Shown,
		Hidden:    out.Hidden,
		Published: out.Published,
		Quit:      out.Quit,
		Skipped:   out.Skipped,
		Ignored:   out.Ignored,
	}
	return nil
}

func (s *TrayService) Menu(_ Empty, resp *MenuReply) error {
	for _, item := range s.cmds.TrayMenu() {
		resp.Items = append(resp.Items, MenuItem{ID: item.ID, Label: item.Label, Separator: item.Separator})
	}
	return nil
}

// EventService hands published UI events to the frontend. An event stays
// in flight, and is returned by every Drain, until a caller acknowledges its
// ID. Consumers deduplicate on ID.
type EventService struct {
	sub *events.Subscription

	mu       sync.Mutex
	inflight []events.Event
}

func NewEventService(sub *events.Subscription) *EventService {
	return &EventService{sub: sub}
}

func (s *EventService) Drain(req DrainArgs, resp *DrainReply) error {
	resp.Events = s.pending(req.Ack)
	if len(resp.Events) > 0 || req.WaitMillis <= 0 {
		return nil
	}
	wait := time.Duration(req.WaitMillis) * time.Millisecond
	if wait > maxDrainWait {
		wait = maxDrainWait
	}
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	evt, err := s.sub.Next(ctx)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	s.inflight = append(s.inflight, evt)
	s.mu.Unlock()
	resp.Events = s.pending(nil)
	return nil
}

func (s *EventService) Ack(req AckArgs, _ *Empty) error {
	s.pending(req.IDs)
	return nil
}

// pending drops acknowledged events, moves newly queued ones in flight and
// returns everything unacknowledged in publish order.
func (s *EventService) pending(ack []string) []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(ack) > 0 {
		done := make(map[string]struct{}, len(ack))
		for _, id := range ack {
			done[id] = struct{}{}
		}
		kept := s.inflight[:0]
		for _, evt := range s.inflight {
			if _, ok := done[evt.ID]; !ok {
				kept = append(kept, evt)
			}
		}
		s.inflight = kept
	}
	s.inflight = append(s.inflight, s.sub.Drain()...)
	return append([]events.Event(nil), s.inflight...)
}

type Server struct {
	cmds Commands
	sub  *events.Subscription
	log  hclog.Logger
}

// NewServer serves cmds and hands events from sub to Events.Drain. The caller
// owns sub; subscribing before any producer starts keeps early events.
func NewServer(cmds Commands, sub *events.Subscription, log hclog.Logger) *Server {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Server{cmds: cmds, sub: sub, log: log}
}

// Serve listens on socketPath until ctx is done.
func (s *Server) Serve(ctx context.Context, socketPath string) error {
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o755); err != nil {
		return fmt.Errorf("create ipc dir: %w", err)
	}
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale ipc socket: %w", err)
	}
	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen ipc socket: %w", err)
	}
	if err := os.Chmod(socketPath, 0o600); err != nil {
		_ = ln.Close()
		return fmt.Errorf("chmod ipc socket: %w", err)
	}
	defer ln.Close()

	rpcSrv := rpc.NewServer()
	if err := rpcSrv.RegisterName("App", &AppService{cmds: s.cmds}); err != nil {
		return fmt.Errorf("register app service: %w", err)
	}
	if err := rpcSrv.RegisterName("Tray", &TrayService{cmds: s.cmds}); err != nil {
		return fmt.Errorf("register tray service: %w", err)
	}
	if err := rpcSrv.RegisterName("Events", NewEventService(s.sub)); err != nil {
		return fmt.Errorf("register event service: %w", err)
	}

	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = ln.Close()
		case <-stop:
		}
	}()
	defer close(stop)

	s.log.Info("bridge listening", "socket", socketPath)
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return err
		}
		s.log.Debug("bridge connection accepted")
		go rpcSrv.ServeCodec(jsonrpc.NewServerCodec(conn))
	}
}
