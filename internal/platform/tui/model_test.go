package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// scriptedGame records the frames it is stepped with and reports whatever
// state the test sets.
type scriptedGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *scriptedGame) ID() string                  { return "scripted" }
func (g *scriptedGame) Title() string               { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig)    { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)     { dst.Clear(); dst.DrawTextColored(0, 0, "scripted", core.ColorDefault) }
func (g *scriptedGame) State() core.GameState       { return g.state }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func newTestModel(g core.Game) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, WithScreenshotDir(""))
}

func TestSteeringKeyIsHeldAcrossTicks(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
		if !g.last().Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}

	// The latch runs out without further key events.
	for i := 0; i < 60; i++ {
		m = update(t, m, TickMsg{})
	}
	if g.last().Has(core.ActionLeft) {
		t.Error("left should be released after the latch expires")
	}
}

func TestOppositeSteeringCancels(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg{})

	if g.last().Has(core.ActionLeft) || !g.last().Has(core.ActionRight) {
		t.Errorf("expected only right held, got %v", g.last().Actions)
	}
}

func TestEdgeActionsLastOneTick(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g)

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if !g.last().Has(core.ActionPause) {
		t.Fatal("pause should reach the game")
	}
	m = update(t, m, TickMsg{})
	if g.last().Has(core.ActionPause) {
		t.Error("pause should only be delivered once")
	}

	// Restart is passed through; the game decides whether it applies.
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	update(t, m, TickMsg{})
	if !g.last().Has(core.ActionRestart) {
		t.Error("restart should reach the game")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 0 {
		t.Errorf("resize reset the game %d times", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() >= 40 {
		t.Errorf("screen = %dx%d, expected 100 wide leaving room for help", m.screen.Width(), m.screen.Height())
	}
}

func TestRunResultsRecorded(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g)

	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 3, HighScore: 7, GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{}) // still over, not a new result

	results := m.Results()
	if len(results) != 1 {
		t.Fatalf("got %d results, expected 1", len(results))
	}
	if results[0].Run != 1 || results[0].Score != 3 || results[0].Highest != 7 {
		t.Errorf("result = %+v", results[0])
	}

	g.state = core.GameState{}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 1, HighScore: 7, GameOver: true}
	m = update(t, m, TickMsg{})
	if len(m.Results()) != 2 || m.Results()[1].Run != 2 {
		t.Errorf("second run not recorded: %+v", m.Results())
	}
}

func TestBackToMenuOnlyWhenEnabledAndStopped(t *testing.T) {
	g := &scriptedGame{}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m := newTestModel(g)
	g.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, esc)
	if m.BackToMenu() {
		t.Error("esc should do nothing without WithBackToMenu")
	}

	g.state.GameOver = false
	m = NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, WithBackToMenu())
	m = update(t, m, TickMsg{})
	m = update(t, m, esc)
	if m.BackToMenu() {
		t.Error("esc should not leave a running game")
	}

	g.state.Paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, esc)
	if !m.BackToMenu() {
		t.Error("esc should leave a paused game")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&scriptedGame{})
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m := newTestModel(&scriptedGame{})
	view := m.View()
	if !strings.Contains(view, "scripted") {
		t.Error("view should contain the game's screen")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help line")
	}
}
