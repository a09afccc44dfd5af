package backups

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	backupdto "focusdesk/internal/modules/backup/dto"
	"focusdesk/internal/ui/theme"
)

type BackupsPort interface {
	List(ctx context.Context) ([]backupdto.BackupOutput, error)
	Create(ctx context.Context, name string) (backupdto.BackupOutput, error)
}

type LoadedMsg struct {
	Backups []backupdto.BackupOutput
	Err     error
}

// CreatedMsg reports a backup started from the palette.
type CreatedMsg struct {
	Backup backupdto.BackupOutput
	Err    error
}

type Model struct {
	port    BackupsPort
	table   table.Model
	backups []backupdto.BackupOutput
	err     error
	width   int
	height  int
}

func New(port BackupsPort) Model {
	columns := []table.Column{
		{Title: "Name", Width: 16},
		{Title: "Taken", Width: 19},
		{Title: "Documents", Width: 36},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(true))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.Sapphire).Bold(true).BorderForeground(theme.Surface1)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)
	return Model{port: port, table: t}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		backups, err := m.port.List(context.Background())
		return LoadedMsg{Backups: backups, Err: err}
	}
}

func (m Model) Create(name string) tea.Cmd {
	return func() tea.Msg {
		backup, err := m.port.Create(context.Background(), name)
		return CreatedMsg{Backup: backup, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-4, 3))
		m.table.SetWidth(m.width)
		return m, nil
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.backups = msg.Backups
			m.table.SetRows(toRows(msg.Backups))
		}
		return m, nil
	case CreatedMsg:
		if msg.Err == nil {
			return m, m.Reload()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Backups") + "  ")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d recorded", len(m.backups))) + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Error.Render(m.err.Error()) + "\n")
		return sb.String()
	}
	if len(m.backups) == 0 {
		sb.WriteString(theme.Muted.Render("No backups yet. Open the palette and run: backup <name>") + "\n")
		return sb.String()
	}
	sb.WriteString(m.table.View())
	if row := m.table.Cursor(); row >= 0 && row < len(m.backups) {
		sb.WriteString("\n" + theme.Muted.Render(m.backups[row].Folder))
	}
	return lipgloss.NewStyle().Width(m.width).Render(sb.String())
}

func toRows(backups []backupdto.BackupOutput) []table.Row {
	rows := make([]table.Row, 0, len(backups))
	for _, b := range backups {
		rows = append(rows, table.Row{b.Name, b.CreatedAt.Format("2006-01-02 15:04:05"), strings.Join(b.Documents, ", ")})
	}
	return rows
}
