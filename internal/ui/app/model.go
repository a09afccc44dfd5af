package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	windowdto "focusdesk/internal/modules/window/dto"
	"focusdesk/internal/platform/events"
	"focusdesk/internal/ui/components"
	"focusdesk/internal/ui/theme"
	backupsview "focusdesk/internal/ui/views/backups"
	documentsview "focusdesk/internal/ui/views/documents"
	trayview "focusdesk/internal/ui/views/tray"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type windowPort interface {
	State(ctx context.Context) (windowdto.StateOutput, error)
}

type actionsPort interface {
	ExportData(ctx context.Context, dataType, path string) error
	ImportData(ctx context.Context, dataType, path string) error
	ResetAllData(ctx context.Context) error
	GetAppDataDir(ctx context.Context) (string, error)
	SetAlwaysOnTop(ctx context.Context, enabled bool) error
	MinimizeToTray(ctx context.Context) error
	ShowNotification(ctx context.Context, title, body string) error
}

// EventSource delivers UI events published by the tray and the watcher.
type EventSource interface {
	Next(ctx context.Context) (events.Event, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDocuments tabID = iota
	tabBackups
	tabTray
	tabCount
)

var tabLabels = [tabCount]string{
	"Documents", "Backups", "Tray",
}

// ─── async messages ───────────────────────────────────────────────────────────

type uiEventMsg struct {
	evt events.Event
	err error
}

type windowStateMsg struct {
	state windowdto.StateOutput
	err   error
}

type actionDoneMsg struct {
	label  string
	err    error
	reload bool
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Close:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close to tray")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Palette},
		{k.Close, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model and plays the main window. When the
// window is hidden only the tray remains reachable.
type Model struct {
	dataDir string

	windows windowPort
	actions actionsPort
	events  EventSource

	docView    documentsview.Model
	backupView backupsview.Model
	trayView   trayview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	window    windowdto.StateOutput
	hasWindow bool
	banner    string
	focusCue  bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

// NewModel builds the root model over the command surface. source may be nil
// when no event bus is attached.
func NewModel(
	dataDir string,
	documents documentsview.DocumentsPort,
	backups backupsview.BackupsPort,
	tray trayview.TrayPort,
	windows windowPort,
	actions actionsPort,
	source EventSource,
) Model {
	return Model{
		dataDir:    dataDir,
		windows:    windows,
		actions:    actions,
		events:     source,
		docView:    documentsview.New(documents),
		backupView: backupsview.New(backups),
		trayView:   trayview.New(tray),
		activeTab:  tabDocuments,
		keys:       defaultKeys(),
		help:       fullHelp(),
		palette:    components.NewPalette(),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.docView.Init(),
		m.backupView.Init(),
		m.loadWindowCmd(),
		m.waitEventCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if _, isKey := msg.(tea.KeyMsg); isKey && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case uiEventMsg:
		if msg.err != nil {
			return m, nil
		}
		m.trayView.Record(msg.evt)
		cmds = append(cmds, m.waitEventCmd())
		switch msg.evt.Name {
		case "start-focus":
			m.banner, m.focusCue = "Focus session started", true
		case "start-break":
			m.banner, m.focusCue = "Break started", false
		case "documents-changed":
			cmds = append(cmds, m.docView.Reload())
		}
		return m, tea.Batch(cmds...)

	case windowStateMsg:
		m.hasWindow = msg.err == nil
		m.window = msg.state
		m.trayView.SetWindow(msg.state, m.hasWindow)
		if m.hasWindow && !m.window.Visible {
			m.activeTab = tabTray
		}
		return m, nil

	case trayview.DispatchedMsg:
		switch {
		case msg.Err != nil:
			m.status = "tray: " + msg.Err.Error()
		case msg.Outcome.Skipped:
			m.status = "tray: window unavailable, " + msg.Event + " ignored"
		case msg.Outcome.Ignored:
			m.status = "tray: nothing bound to " + msg.Event
		default:
			m.status = "tray: " + msg.Event
		}
		return m, m.loadWindowCmd()

	case backupsview.CreatedMsg:
		if msg.Err != nil {
			m.status = "backup failed: " + msg.Err.Error()
		} else {
			m.status = "backup written to " + msg.Backup.Folder
			m.activeTab = tabBackups
		}
		var cmd tea.Cmd
		m.backupView, cmd = m.backupView.Update(msg)
		return m, cmd

	case documentsview.StatusLoadedMsg, documentsview.ContentLoadedMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.docView, cmd = m.docView.Update(msg)
		return m, cmd

	case backupsview.LoadedMsg:
		var cmd tea.Cmd
		m.backupView, cmd = m.backupView.Update(msg)
		return m, cmd

	case actionDoneMsg:
		if msg.err != nil {
			m.status = msg.label + " failed: " + msg.err.Error()
		} else {
			m.status = msg.label
		}
		cmds = append(cmds, m.loadWindowCmd())
		if msg.reload {
			cmds = append(cmds, m.docView.Reload())
		}
		return m, tea.Batch(cmds...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, m.trayView.Dispatch("quit")
		case "x":
			if m.windowVisible() {
				return m, m.trayView.Dispatch("close")
			}
		case "tab":
			if m.windowVisible() {
				m.activeTab = (m.activeTab + 1) % tabCount
			}
		case "shift+tab":
			if m.windowVisible() {
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			}
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			if m.windowVisible() {
				cmds = append(cmds, m.palette.Open())
				return m, tea.Batch(cmds...)
			}
		}
	}

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDocuments:
		m.docView, tabCmd = m.docView.Update(msg)
	case tabBackups:
		m.backupView, tabCmd = m.backupView.Update(msg)
	case tabTray:
		m.trayView, tabCmd = m.trayView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case !m.windowVisible():
		notice := theme.Muted.Render("focusdesk is in the tray. Pick Show or press c to click the icon.")
		content = lipgloss.JoinVertical(lipgloss.Left, notice, "", m.trayView.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDocuments:
		return m.docView.View()
	case tabBackups:
		return m.backupView.View()
	case tabTray:
		return m.trayView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "focusdesk  " + strings.Join(parts, sep) + "  " + theme.Muted.Render(m.dataDir)
	if m.banner != "" {
		bar += "  " + theme.Banner(m.banner, m.focusCue).String()
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasWindow && m.window.AlwaysOnTop {
		left = theme.Hot.Render("▲ on top") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  x:tray  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "backup":
		if len(parts) < 2 {
			m.status = "usage: backup <name>"
			return m, nil
		}
		return m, m.backupView.Create(parts[1])

	case "export", "import":
		if len(parts) < 3 {
			m.status = "usage: " + parts[0] + " <type> <path>"
			return m, nil
		}
		dataType, path := parts[1], strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]+" "))
		if parts[0] == "export" {
			return m, m.actionCmd("exported "+dataType+" to "+path, false, func(ctx context.Context) error {
				return m.actions.ExportData(ctx, dataType, path)
			})
		}
		return m, m.actionCmd("imported "+dataType+" from "+path, true, func(ctx context.Context) error {
			return m.actions.ImportData(ctx, dataType, path)
		})

	case "ontop":
		if len(parts) < 2 || (parts[1] != "on" && parts[1] != "off") {
			m.status = "usage: ontop <on|off>"
			return m, nil
		}
		enabled := parts[1] == "on"
		return m, m.actionCmd("always on top "+parts[1], false, func(ctx context.Context) error {
			return m.actions.SetAlwaysOnTop(ctx, enabled)
		})

	case "minimize":
		return m, m.actionCmd("minimized to tray", false, m.actions.MinimizeToTray)

	case "notify":
		if len(parts) < 2 {
			m.status = "usage: notify <title> [body]"
			return m, nil
		}
		body := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]))
		return m, m.actionCmd("notification sent", false, func(ctx context.Context) error {
			return m.actions.ShowNotification(ctx, parts[1], body)
		})

	case "tray":
		if len(parts) < 2 {
			m.status = "usage: tray <event>"
			return m, nil
		}
		return m, m.trayView.Dispatch(parts[1])

	case "reset":
		if len(parts) < 2 || parts[1] != "confirm" {
			m.status = "reset removes every document; run: reset confirm"
			return m, nil
		}
		return m, m.actionCmd("all data reset", true, m.actions.ResetAllData)

	case "datadir":
		dir, err := m.actions.GetAppDataDir(context.Background())
		if err != nil {
			m.status = "datadir: " + err.Error()
		} else {
			m.status = dir
		}

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) windowVisible() bool {
	return !m.hasWindow || m.window.Visible
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.docView, _ = m.docView.Update(sz)
	m.backupView, _ = m.backupView.Update(sz)
	m.trayView, _ = m.trayView.Update(sz)
}

func fullHelp() help.Model {
	h := help.New()
	h.ShowAll = true
	return h
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadWindowCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.windows.State(context.Background())
		return windowStateMsg{state: state, err: err}
	}
}

func (m Model) waitEventCmd() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		evt, err := m.events.Next(context.Background())
		return uiEventMsg{evt: evt, err: err}
	}
}

func (m Model) actionCmd(label string, reload bool, run func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := run(context.Background()); err != nil {
			return actionDoneMsg{label: label, err: fmt.Errorf("%s: %w", label, err)}
		}
		return actionDoneMsg{label: label, reload: reload}
	}
}
