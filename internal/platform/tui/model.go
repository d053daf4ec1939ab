package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// RunResult summarizes one finished run.
type RunResult struct {
	Run      int
	Score    int
	Highest  int
	Duration time.Duration
}

// Model is the Bubble Tea model for playing the jumper in a terminal.
type Model struct {
	game      core.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	pressed   core.InputFrame     // Edge-triggered actions for the next tick
	held      map[core.Action]int // Steering latches, in ticks remaining
	gameState core.GameState

	results       []RunResult
	runStart      time.Time
	screenshotDir string

	quitting   bool
	backToMenu bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger. The default discards everything, since the
// terminal is busy drawing the game.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) { m.logger = logger }
}

// WithBackToMenu enables the esc binding that leaves a paused or finished
// game.
func WithBackToMenu() ModelOption {
	return func(m *Model) { m.keys.Back.SetEnabled(true) }
}

// WithScreenshotDir sets where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.screenshotDir = dir }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:     game,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   log.New(io.Discard),
		pressed:  core.NewInputFrame(),
		held:     make(map[core.Action]int),
		runStart: time.Now(),
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, ".jumper", "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight(cfg.ScreenH))
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight(m.config.ScreenH))
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionLeft, core.ActionRight:
		m.hold(action)
	case core.ActionRestart, core.ActionPause:
		m.pressed.Set(action)
	}
	return m, nil
}

// hold latches a steering key. Terminals report presses and auto-repeats
// but never releases, so the key counts as held for a while after each
// event. The first press has to bridge the keyboard's initial repeat delay.
func (m Model) hold(a core.Action) {
	opposite := core.ActionLeft
	if a == core.ActionLeft {
		opposite = core.ActionRight
	}
	delete(m.held, opposite)

	ticks := core.Max(m.config.TickRate/2, 1)
	if m.held[a] > 0 {
		ticks = core.Max(m.config.TickRate/6, 1)
	}
	m.held[a] = core.Max(m.held[a], ticks)
}

// handleResize processes window resize events. The run carries on; only
// the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pressed.Clone()
	for a, ticks := range m.held {
		frame.Set(a)
		if ticks <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = ticks - 1
		}
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	switch {
	case !wasOver && m.gameState.GameOver:
		run := RunResult{
			Run:      len(m.results) + 1,
			Score:    m.gameState.Score,
			Highest:  m.gameState.HighScore,
			Duration: time.Since(m.runStart).Round(time.Second),
		}
		m.results = append(m.results, run)
		m.logger.Info("run ended", "run", run.Run, "score", run.Score, "highest", run.Highest)
	case wasOver && !m.gameState.GameOver:
		m.runStart = time.Now()
		m.logger.Debug("run restarted")
	}

	m.pressed.Clear()
	return m, tickCmd(m.config.TickRate)
}

// playfieldHeight is the terminal height left after the help line.
func (m Model) playfieldHeight(total int) int {
	return core.Max(total-lipgloss.Height(m.help.View(m.keys)), 0)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Results returns the runs finished so far.
func (m Model) Results() []RunResult {
	return m.results
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the user quits and returns the
// finished runs.
func Run(game core.Game, cfg core.RuntimeConfig, opts ...ModelOption) ([]RunResult, error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: run game: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Results(), nil
	}
	return nil, nil
}
