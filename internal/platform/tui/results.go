package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q/enter", "close"),
		),
	}
}

// ResultsModel lists the runs of a session after the game closes.
type ResultsModel struct {
	results    []RunResult
	finalScore string
	table      table.Model
	help       help.Model
	keys       ResultsKeyMap
	width      int
	height     int
	done       bool
}

// NewResultsModel creates a results screen. finalScore is the text the
// game published for its last run.
func NewResultsModel(results []RunResult, finalScore string, width, height int) ResultsModel {
	m := ResultsModel{
		results:    results,
		finalScore: finalScore,
		help:       help.New(),
		keys:       DefaultResultsKeyMap(),
		width:      width,
		height:     height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Carrots", Width: 9},
		{Title: "Highest", Width: 9},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(atLeast(m.height-8, 3)), // Title, summary, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("170")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// atLeast returns the larger of a and floor.
func atLeast(a, floor int) int {
	if a < floor {
		return floor
	}
	return a
}

// updateTableRows fills the table, newest run first.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, 0, len(m.results))
	for i := len(m.results) - 1; i >= 0; i-- {
		r := m.results[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", r.Run),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Highest),
			r.Duration.String(),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("RESULTS"), m.width))
	b.WriteString("\n\n")
	if m.finalScore != "" {
		b.WriteString(centerText("Last run · "+m.finalScore, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunResults shows the results screen until the user closes it.
func RunResults(results []RunResult, finalScore string, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(results, finalScore, width, height),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: show results: %w", err)
	}
	return nil
}
