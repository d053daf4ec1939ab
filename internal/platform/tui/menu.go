package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry on the title screen.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuQuit
)

func (i MenuItem) String() string {
	if i == MenuQuit {
		return "Quit"
	}
	return "Play"
}

// MenuKeyMap defines the key bindings for the title screen.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuModel is the title screen shown to SSH players between runs.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	best     int
	results  []RunResult
	keys     MenuKeyMap
	quitting bool
	selected bool
}

// NewMenuModel creates a title screen showing the best score and the runs
// finished so far in this session.
func NewMenuModel(width, height, best int, results []RunResult) MenuModel {
	return MenuModel{
		items:   []MenuItem{MenuPlay, MenuQuit},
		width:   width,
		height:  height,
		best:    best,
		results: results,
		keys:    DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.items[m.cursor] == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		titleStyle.Render("B U N N Y   J U M P E R"),
		"",
		fmt.Sprintf("Highest: %d", m.best),
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("> "+item.String()))
		} else {
			lines = append(lines, "  "+item.String())
		}
	}
	if n := len(m.results); n > 0 {
		last := m.results[n-1]
		lines = append(lines, "", dimStyle.Render(fmt.Sprintf("Last run: %d carrots in %s", last.Score, last.Duration)))
	}
	lines = append(lines, "", dimStyle.Render("←/→ steer in the air  •  space: try again  •  p: pause  •  esc: menu"))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns true once the player chose to play.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers a possibly multi-line, possibly styled block within
// width.
func centerText(text string, width int) string {
	if width <= lipgloss.Width(text) {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
