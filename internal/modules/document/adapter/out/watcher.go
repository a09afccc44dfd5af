package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	hclog "github.com/hashicorp/go-hclog"

	"focusdesk/internal/modules/document/domain"
	documentout "focusdesk/internal/modules/document/port/out"
)

const defaultCoalesce = 100 * time.Millisecond

// FSChangeWatcher reports writes and removals of the known documents. Bursts
// of filesystem events for one document collapse into a single change.
type FSChangeWatcher struct {
	dir      string
	coalesce time.Duration
	log      hclog.Logger
}

func NewFSChangeWatcher(dataDir string, log hclog.Logger) documentout.ChangeWatcher {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &FSChangeWatcher{dir: dataDir, coalesce: defaultCoalesce, log: log}
}

func (w *FSChangeWatcher) Watch(ctx context.Context) (<-chan domain.Change, error) {
	if w.dir == "" {
		return nil, errors.New("document watcher: data dir unknown")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("document watcher: ensure data dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("document watcher: create: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("document watcher: watch %s: %w", w.dir, err)
	}

	out := make(chan domain.Change, 16)
	go func() {
		defer close(out)
		defer func() {
			if err := watcher.Close(); err != nil {
				w.log.Warn("watcher close failed", "error", err)
			}
		}()

		pending := newPendingChanges()
		var flush <-chan time.Time
		var timer *time.Timer

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn("watcher error", "error", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				change, relevant := classify(evt)
				if !relevant {
					continue
				}
				pending.add(change)
				if timer == nil {
					timer = time.NewTimer(w.coalesce)
					flush = timer.C
				}
			case <-flush:
				timer = nil
				flush = nil
				for _, change := range pending.take() {
					select {
					case out <- change:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()
	return out, nil
}

func classify(evt fsnotify.Event) (domain.Change, bool) {
	base := filepath.Base(evt.Name)
	if !strings.HasSuffix(base, domain.Extension) {
		return domain.Change{}, false
	}
	name, err := domain.Parse(strings.TrimSuffix(base, domain.Extension))
	if err != nil {
		return domain.Change{}, false
	}
	switch {
	case evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return domain.Change{Name: name, Op: domain.ChangeRemoved}, true
	case evt.Op&(fsnotify.Create|fsnotify.Write) != 0:
		return domain.Change{Name: name, Op: domain.ChangeWritten}, true
	default:
		return domain.Change{}, false
	}
}

// pendingChanges keeps the latest op per document in first-seen order.
type pendingChanges struct {
	mu    sync.Mutex
	order []domain.Name
	ops   map[domain.Name]domain.ChangeOp
}

func newPendingChanges() *pendingChanges {
	return &pendingChanges{ops: map[domain.Name]domain.ChangeOp{}}
}

func (p *pendingChanges) add(change domain.Change) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, seen := p.ops[change.Name]; !seen {
		p.order = append(p.order, change.Name)
	}
	p.ops[change.Name] = change.Op
}

func (p *pendingChanges) take() []domain.Change {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Change, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, domain.Change{Name: name, Op: p.ops[name]})
	}
	p.order = nil
	p.ops = map[domain.Name]domain.ChangeOp{}
	return out
}
