// Package desktop runs a jumper game in a native window through ebiten.
package desktop

import (
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

// Debug font cell size, used to centre overlay text.
const (
	glyphW = 6
	glyphH = 16
)

var (
	skyColor      = color.RGBA{R: 0xbf, G: 0xe6, B: 0xff, A: 0xff}
	cloudColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xd0}
	platformColor = color.RGBA{R: 0xd9, G: 0xb9, B: 0x7a, A: 0xff}
	carrotColor   = color.RGBA{R: 0xf5, G: 0x8a, B: 0x1f, A: 0xff}
	bunnyColor    = color.RGBA{R: 0xf4, G: 0xf0, B: 0xe8, A: 0xff}
	hurtColor     = color.RGBA{R: 0xff, G: 0x20, B: 0x20, A: 0xff}
	hudColor      = color.RGBA{R: 0xe4, G: 0x67, B: 0xf0, A: 0xff}
	shadeColor    = color.RGBA{A: 0x80}
)

// Keys maps physical keys to actions. Steering keys are sampled while held,
// the others fire on the press edge only.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	restartKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyR}
	pauseKeys   = []ebiten.Key{ebiten.KeyP}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// keySource reports keyboard state for one update.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func anyOf(keys []ebiten.Key, fn func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}

// readInput builds the input frame for one tick.
func readInput(src keySource) core.InputFrame {
	in := core.NewInputFrame()
	left := anyOf(leftKeys, src.Pressed)
	right := anyOf(rightKeys, src.Pressed)
	// Both held cancel out.
	if left && !right {
		in.Set(core.ActionLeft)
	}
	if right && !left {
		in.Set(core.ActionRight)
	}
	if anyOf(restartKeys, src.JustPressed) {
		in.Set(core.ActionRestart)
	}
	if anyOf(pauseKeys, src.JustPressed) {
		in.Set(core.ActionPause)
	}
	if anyOf(quitKeys, src.JustPressed) {
		in.Set(core.ActionQuit)
	}
	return in
}

// rect is a box in screen pixels.
type rect struct {
	X, Y, W, H float32
}

// toScreen translates a world box by the camera scroll.
func toScreen(b core.Box, scrollX, scrollY float64) rect {
	return rect{
		X: float32(b.X - scrollX),
		Y: float32(b.Y - scrollY),
		W: float32(b.W),
		H: float32(b.H),
	}
}

// centredX returns the left edge that centres s on a line of width w.
func centredX(s string, w int) int {
	return (w - len([]rune(s))*glyphW) / 2
}

func playerColor(state jumper.PlayerState) color.Color {
	if state == jumper.StateHurt {
		return hurtColor
	}
	return bunnyColor
}

// adapter implements ebiten.Game on top of a jumper game.
type adapter struct {
	game   *jumper.Game
	keys   keySource
	snap   jumper.Snapshot
	logger *log.Logger
	over   bool
}

func newAdapter(game *jumper.Game, keys keySource, logger *log.Logger) *adapter {
	return &adapter{game: game, keys: keys, snap: game.Snapshot(), logger: logger}
}

func (a *adapter) Update() error {
	in := readInput(a.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := a.game.Step(in)
	if res.State.GameOver && !a.over {
		a.logger.Info("run ended", "score", res.State.Score, "highest", res.State.HighScore)
	}
	a.over = res.State.GameOver
	a.snap = a.game.Snapshot()
	return nil
}

func (a *adapter) Draw(screen *ebiten.Image) {
	s := a.snap
	screen.Fill(skyColor)

	fill := func(b core.Box, clr color.Color) {
		r := toScreen(b, s.ScrollX, s.ScrollY)
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, clr, false)
	}
	for _, b := range s.Clouds {
		fill(b, cloudColor)
	}
	for _, b := range s.Platforms {
		fill(b, platformColor)
	}
	for _, b := range s.Collectibles {
		fill(b, carrotColor)
	}
	fill(s.Player, playerColor(s.PlayerState))

	w, h := int(s.ViewW), int(s.ViewH)
	vector.DrawFilledRect(screen, 0, 0, float32(w), glyphH+8, hudColor, false)
	ebitenutil.DebugPrintAt(screen, s.CarrotsText, 8, 4)
	ebitenutil.DebugPrintAt(screen, s.HighestText, w-8-len(s.HighestText)*glyphW, 4)

	switch {
	case s.Status == jumper.StatusGameOver:
		a.overlay(screen, w, h, jumper.GameOverText, jumper.RestartText)
	case s.Paused:
		a.overlay(screen, w, h, jumper.PausedText, jumper.ResumeText)
	}
}

func (a *adapter) overlay(screen *ebiten.Image, w, h int, title, hint string) {
	vector.DrawFilledRect(screen, 0, float32(h/2-glyphH*2), float32(w), glyphH*5, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, title, centredX(title, w), h/2-glyphH)
	ebitenutil.DebugPrintAt(screen, hint, centredX(hint, w), h/2+glyphH)
}

func (a *adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.snap.ViewW), int(a.snap.ViewH)
}

// withSeed replaces a zero seed with one taken from the clock.
func withSeed(rc core.RuntimeConfig, now func() time.Time) core.RuntimeConfig {
	if rc.Seed == 0 {
		rc.Seed = now().UnixNano()
	}
	return rc
}

// Run opens a window and plays until the player quits or closes it.
func Run(game *jumper.Game, rc core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(withSeed(rc, time.Now))
	a := newAdapter(game, ebitenKeys{}, logger)

	ebiten.SetWindowSize(int(a.snap.ViewW), int(a.snap.ViewH))
	ebiten.SetWindowTitle(game.Title())
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	logger.Debug("opening window", "w", a.snap.ViewW, "h", a.snap.ViewH, "tps", ebiten.TPS())
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
