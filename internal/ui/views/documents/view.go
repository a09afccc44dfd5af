package documents

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	documentdto "focusdesk/internal/modules/document/dto"
	"focusdesk/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DocumentsPort interface {
	Status(ctx context.Context) ([]documentdto.DocumentOutput, error)
	Read(ctx context.Context, name string) (string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatusLoadedMsg struct {
	Documents []documentdto.DocumentOutput
	Err       error
}

type ContentLoadedMsg struct {
	Name    string
	Content string
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type documentItem struct {
	doc documentdto.DocumentOutput
}

func (i documentItem) Title() string { return i.doc.Name }
func (i documentItem) Description() string {
	if !i.doc.Exists {
		return "not written yet"
	}
	return fmt.Sprintf("%d bytes  %s", i.doc.Size, i.doc.ModifiedAt.Format("2006-01-02 15:04"))
}
func (i documentItem) FilterValue() string { return i.doc.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    DocumentsPort
	list    list.Model
	name    string
	content string
	err     error
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port DocumentsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Documents"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload refreshes the status list and the open preview.
func (m Model) Reload() tea.Cmd {
	cmds := []tea.Cmd{m.loadStatusCmd()}
	if m.name != "" {
		cmds = append(cmds, m.loadContentCmd(m.name))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case StatusLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Documents: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Documents))
		for i, doc := range msg.Documents {
			items[i] = documentItem{doc: doc}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if m.name == "" && len(msg.Documents) > 0 {
			cmds = append(cmds, m.loadContentCmd(msg.Documents[0].Name))
		}

	case ContentLoadedMsg:
		m.name = msg.Name
		m.content = msg.Content
		m.err = msg.Err
		m.preview.SetContent(m.renderContent())
		m.preview.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(documentItem); ok {
				cmds = append(cmds, m.loadContentCmd(item.doc.Name))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading documents…")
	}

	listW := m.width * 3 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedName returns the highlighted document, if any.
func (m Model) SelectedName() (string, bool) {
	if item, ok := m.list.SelectedItem().(documentItem); ok {
		return item.doc.Name, true
	}
	return "", false
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 3 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderContent() string {
	if m.err != nil {
		return theme.Error.Render(m.err.Error())
	}
	if m.name == "" {
		return theme.Muted.Render("Select a document to preview it")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.name+".json") + "\n\n")
	sb.WriteString(m.content)
	if !strings.HasSuffix(m.content, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		docs, err := m.port.Status(context.Background())
		return StatusLoadedMsg{Documents: docs, Err: err}
	}
}

func (m Model) loadContentCmd(name string) tea.Cmd {
	return func() tea.Msg {
		content, err := m.port.Read(context.Background(), name)
		return ContentLoadedMsg{Name: name, Content: content, Err: err}
	}
}
