package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"trialbench/internal/benchmark"
	"trialbench/internal/report"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type resultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Quit key.Binding
}

var resultsKeys = resultsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next table"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var startResultsViewer = func(run benchmark.Run) error {
	p := tea.NewProgram(NewResultsModel(run), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running results viewer: %w", err)
	}
	return nil
}

// StartResultsViewer opens an interactive table of the run's rows.
func StartResultsViewer(run benchmark.Run) error {
	return startResultsViewer(run)
}

// SetStartResultsViewerForTest allows tests to replace the viewer starter function.
func SetStartResultsViewerForTest(fn func(run benchmark.Run) error) func() {
	prev := startResultsViewer
	startResultsViewer = fn
	return func() { startResultsViewer = prev }
}

// ResultsModel is a read-only bubbletea model over a rendered run. Each
// block report.Table prints gets its own table; tab cycles between them.
type ResultsModel struct {
	tables []table.Model
	active int
	title  string
}

// NewResultsModel builds the tables with the same cells report.Table prints.
func NewResultsModel(run benchmark.Run) *ResultsModel {
	var tables []table.Model
	for _, g := range report.Grids(run) {
		tables = append(tables, newGridTable(g))
	}
	if len(tables) == 0 {
		tables = append(tables, newGridTable(report.Grid{}))
	}
	tables[0].Focus()

	title := fmt.Sprintf("%s run", run.Suite)
	if run.ID != "" {
		title = fmt.Sprintf("%s run %s", run.Suite, run.ID)
	}
	return &ResultsModel{tables: tables, title: title}
}

func newGridTable(g report.Grid) table.Model {
	columns := make([]table.Column, len(g.Header))
	for i, h := range g.Header {
		width := runewidth.StringWidth(h)
		for _, r := range g.Rows {
			if i < len(r) && runewidth.StringWidth(r[i]) > width {
				width = runewidth.StringWidth(r[i])
			}
		}
		columns[i] = table.Column{Title: h, Width: width}
	}

	rows := make([]table.Row, len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = table.Row(r)
	}

	height := min(len(rows)+1, 20)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ResultsModel) Init() tea.Cmd {
	return nil
}

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, resultsKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, resultsKeys.Next):
			m.tables[m.active].Blur()
			m.active = (m.active + 1) % len(m.tables)
			m.tables[m.active].Focus()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if h := (msg.Height - 6) / len(m.tables); h > 1 {
			for i := range m.tables {
				m.tables[i].SetHeight(h)
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.tables[m.active], cmd = m.tables[m.active].Update(msg)
	return m, cmd
}

func (m *ResultsModel) View() string {
	help := fmt.Sprintf("\n  %s: navigate • %s: quit",
		resultsKeys.Up.Help().Key+"/"+resultsKeys.Down.Help().Key,
		resultsKeys.Quit.Help().Key)
	if len(m.tables) > 1 {
		help = fmt.Sprintf("\n  %s: navigate • %s: %s • %s: quit",
			resultsKeys.Up.Help().Key+"/"+resultsKeys.Down.Help().Key,
			resultsKeys.Next.Help().Key, resultsKeys.Next.Help().Desc,
			resultsKeys.Quit.Help().Key)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title))
	for _, t := range m.tables {
		b.WriteString("\n")
		b.WriteString(baseStyle.Render(t.View()))
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

// Cursor returns the index of the highlighted row in the focused table.
func (m *ResultsModel) Cursor() int {
	return m.tables[m.active].Cursor()
}

// Active returns the index of the focused table.
func (m *ResultsModel) Active() int {
	return m.active
}
