package tray

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	traydto "focusdesk/internal/modules/tray/dto"
	windowdto "focusdesk/internal/modules/window/dto"
	"focusdesk/internal/platform/events"
	"focusdesk/internal/ui/theme"
)

const maxLog = 8

type TrayPort interface {
	Menu() []traydto.MenuItemOutput
	Dispatch(ctx context.Context, event string) (traydto.OutcomeOutput, error)
}

// DispatchedMsg carries the result of a tray event sent from this view.
type DispatchedMsg struct {
	Event   string
	Outcome traydto.OutcomeOutput
	Err     error
}

type Model struct {
	port   TrayPort
	menu   []traydto.MenuItemOutput
	cursor int
	window windowdto.StateOutput
	hasWin bool
	log    []string
	width  int
	height int
}

func New(port TrayPort) Model {
	m := Model{port: port, menu: port.Menu()}
	m.cursor = m.next(-1, 1)
	return m
}

func (m Model) Dispatch(event string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Dispatch(context.Background(), event)
		return DispatchedMsg{Event: event, Outcome: out, Err: err}
	}
}

// SetWindow records the latest main window state; ok is false when the
// window is gone.
func (m *Model) SetWindow(state windowdto.StateOutput, ok bool) {
	m.window = state
	m.hasWin = ok
}

// Record appends a received UI event to the log.
func (m *Model) Record(evt events.Event) {
	line := fmt.Sprintf("%s  %s %s", evt.At.Format("15:04:05"), evt.Name, string(evt.Payload))
	m.log = append(m.log, line)
	if len(m.log) > maxLog {
		m.log = m.log[len(m.log)-maxLog:]
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = m.next(m.cursor, -1)
		case "down", "j":
			m.cursor = m.next(m.cursor, 1)
		case "enter":
			if m.cursor >= 0 && m.cursor < len(m.menu) {
				return m, m.Dispatch(m.menu[m.cursor].ID)
			}
		case "c":
			return m, m.Dispatch("click")
		}
	}
	return m, nil
}

func (m Model) View() string {
	var menu strings.Builder
	menu.WriteString(theme.Title.Render("Tray menu") + "\n\n")
	for i, item := range m.menu {
		if item.Separator {
			menu.WriteString(theme.Muted.Render("  ─────────────") + "\n")
			continue
		}
		if i == m.cursor {
			menu.WriteString(theme.Hot.Render("▸ "+item.Label) + "\n")
		} else {
			menu.WriteString("  " + item.Label + "\n")
		}
	}
	menu.WriteString("\n" + theme.Muted.Render("enter: select  c: click icon"))

	var side strings.Builder
	side.WriteString(theme.Title.Render("Main window") + "\n\n")
	if !m.hasWin {
		side.WriteString(theme.Error.Render("unavailable") + "\n")
	} else {
		side.WriteString(flag("visible", m.window.Visible))
		side.WriteString(flag("focused", m.window.Focused))
		side.WriteString(flag("always on top", m.window.AlwaysOnTop))
	}
	side.WriteString("\n" + theme.Title.Render("UI events") + "\n\n")
	if len(m.log) == 0 {
		side.WriteString(theme.Muted.Render("none yet") + "\n")
	}
	for _, line := range m.log {
		side.WriteString(line + "\n")
	}

	left := theme.Pane.Width(max(m.width/3-4, 20)).Render(menu.String())
	right := theme.Pane.Width(max(m.width-m.width/3-4, 20)).Render(side.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) next(from, step int) int {
	for i := from + step; i >= 0 && i < len(m.menu); i += step {
		if !m.menu[i].Separator {
			return i
		}
	}
	if from < 0 {
		return 0
	}
	return from
}

func flag(label string, on bool) string {
	if on {
		return theme.Good.Render("● ") + label + "\n"
	}
	return theme.Muted.Render("○ "+label) + "\n"
}
