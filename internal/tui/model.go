package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textsearch/internal/service"
)

// SearchPort is the TUI-facing subset of the search service.
type SearchPort interface {
	Search(ctx context.Context, query string) service.Page
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  SearchPort
	ctx      context.Context
	input    textinput.Model
	viewport viewport.Model
	page     service.Page
	status   string
	ready    bool
	searched bool
}

// New creates a new TUI model instance. initial is shown until the first search.
func New(ctx context.Context, svc SearchPort, initial service.Page) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type query and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  svc,
		ctx:      ctx,
		input:    ti,
		viewport: vp,
		page:     initial,
		status:   "Type to search, Enter to run, Ctrl+C to quit.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + folder size
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			// An empty query is valid and matches every line.
			q := m.input.Value()
			m.page = m.service.Search(m.ctx, q)
			m.searched = true
			m.status = fmt.Sprintf("Results for %q", q)
			m.viewport.SetContent(m.renderResults())
			m.viewport.GotoTop()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current results.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Search")
	size := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("Folder size: " + m.page.FolderSize)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + size + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderResults() string {
	if !m.searched || len(m.page.Results) == 0 {
		return "No results yet."
	}
	out := make([]string, len(m.page.Results))
	for i, line := range m.page.Results {
		out[i] = highlightMatches(line, m.page.Query)
	}
	return strings.Join(out, "\n")
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// highlightMatches styles every non-overlapping occurrence of query in line.
func highlightMatches(line, query string) string {
	if query == "" || !strings.Contains(line, query) {
		return line
	}
	var b strings.Builder
	rest := line
	for {
		i := strings.Index(rest, query)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(highlightStyle.Render(query))
		rest = rest[i+len(query):]
	}
	return b.String()
}
