package out

import (
	"sync"

	"focusdesk/internal/modules/window/domain"
	windowout "focusdesk/internal/modules/window/port/out"
)

// MemoryWindow is a headless window: it tracks what a desktop shell would
// render. The terminal UI reads its state to decide what to draw.
type MemoryWindow struct {
	mu    sync.Mutex
	state domain.State
}

func NewMemoryWindow(label string, visible bool) *MemoryWindow {
	return &MemoryWindow{state: domain.State{Label: label, Visible: visible, Focused: visible}}
}

var _ windowout.Window = (*MemoryWindow)(nil)

func (w *MemoryWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Visible = true
	return nil
}

func (w *MemoryWindow) Focus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Focused = true
	return nil
}

func (w *MemoryWindow) Hide() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Visible = false
	w.state.Focused = false
	return nil
}

func (w *MemoryWindow) SetAlwaysOnTop(enabled bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.AlwaysOnTop = enabled
	return nil
}

func (w *MemoryWindow) State() domain.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// WindowRegistry holds the live windows by label.
type WindowRegistry struct {
	mu      sync.RWMutex
	windows map[string]windowout.Window
}

func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{windows: map[string]windowout.Window{}}
}

var _ windowout.Resolver = (*WindowRegistry)(nil)

func (r *WindowRegistry) Attach(label string, window windowout.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[label] = window
}

func (r *WindowRegistry) Detach(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, label)
}

func (r *WindowRegistry) Lookup(label string) (windowout.Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	window, ok := r.windows[label]
	return window, ok
}
