package out

import (
	"os"
	"sync"

	trayout "focusdesk/internal/modules/tray/port/out"
)

// ProcessTerminator runs the registered shutdown hooks once and then exits
// the process.
type ProcessTerminator struct {
	once  sync.Once
	hooks []func()
	exit  func(int)
}

func NewProcessTerminator(hooks ...func()) *ProcessTerminator {
	return &ProcessTerminator{hooks: hooks, exit: os.Exit}
}

var _ trayout.Terminator = (*ProcessTerminator)(nil)

// SetExit replaces os.Exit, for tests.
func (t *ProcessTerminator) SetExit(exit func(int)) {
	t.exit = exit
}

func (t *ProcessTerminator) Terminate(code int) {
	t.once.Do(func() {
		for _, hook := range t.hooks {
			hook()
		}
		t.exit(code)
	})
}

// FuncTerminator hands termination to the caller instead of exiting, for
// hosts that own their shutdown such as the terminal UI.
type FuncTerminator func(code int)

func (f FuncTerminator) Terminate(code int) {
	f(code)
}
