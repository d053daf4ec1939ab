package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering
const (
	CloudChar    = '░'
	PlatformChar = '▀'
	CarrotChar   = '▼'
	BorderChar   = '│'
)

// Overlay texts
const (
	GameOverText = "Nice Try"
	RestartText  = "Press SPACE to try again"
	PausedText   = "PAUSED"
	ResumeText   = "Press P to resume"
)

// viewport maps world units onto terminal cells. Cells are twice as tall
// as they are wide, so the view keeps its proportions and is centred
// horizontally.
type viewport struct {
	ox         int // First playfield column
	cols, rows int
	cw, ch     float64 // World units per cell
	scrollX    float64
	scrollY    float64
}

func newViewport(screenW, screenH int, s Snapshot) viewport {
	v := viewport{rows: screenH, scrollX: s.ScrollX, scrollY: s.ScrollY}
	if screenW <= 0 || screenH <= 0 || s.ViewW <= 0 || s.ViewH <= 0 {
		return v
	}
	v.ch = math.Max(s.ViewH/float64(screenH), 2*s.ViewW/float64(screenW))
	v.cw = v.ch / 2
	v.cols = core.Min(screenW, int(s.ViewW/v.cw))
	v.ox = (screenW - v.cols) / 2
	return v
}

// fill paints every cell the box covers, clipped to the playfield. Boxes
// smaller than a cell still get one.
func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	if v.cols == 0 {
		return
	}
	c0 := int(math.Floor((b.X - v.scrollX) / v.cw))
	c1 := int(math.Ceil((b.Right()-v.scrollX)/v.cw)) - 1
	r0 := int(math.Floor((b.Y - v.scrollY) / v.ch))
	r1 := int(math.Ceil((b.Bottom()-v.scrollY)/v.ch)) - 1
	c1 = core.Max(c0, c1)
	r1 = core.Max(r0, r1)

	for row := core.Max(r0, 0); row <= core.Min(r1, v.rows-1); row++ {
		for col := core.Max(c0, 0); col <= core.Min(c1, v.cols-1); col++ {
			dst.SetColored(v.ox+col, row, r, c)
		}
	}
}

// RenderScreen draws a snapshot into dst.
func RenderScreen(dst *core.Screen, s Snapshot) {
	dst.Clear()
	v := newViewport(dst.Width(), dst.Height(), s)
	if v.cols == 0 {
		return
	}

	if v.ox > 0 {
		for y := 0; y < v.rows; y++ {
			dst.SetColored(v.ox-1, y, BorderChar, core.ColorGray)
			dst.SetColored(v.ox+v.cols, y, BorderChar, core.ColorGray)
		}
	}

	for _, b := range s.Clouds {
		v.fill(dst, b, CloudChar, core.ColorGray)
	}
	for _, b := range s.Platforms {
		v.fill(dst, b, PlatformChar, core.ColorYellow)
	}
	for _, b := range s.Collectibles {
		v.fill(dst, b, CarrotChar, core.ColorOrange)
	}
	drawPlayer(dst, v, s)

	// HUD
	dst.DrawTextColored(v.ox+1, 0, s.CarrotsText, core.ColorBrightMagenta)
	highestX := v.ox + v.cols - len([]rune(s.HighestText)) - 1
	dst.DrawTextColored(highestX, 0, s.HighestText, core.ColorBrightMagenta)

	switch {
	case s.Status == StatusGameOver:
		drawOverlay(dst, v, GameOverText, RestartText)
	case s.Paused:
		drawOverlay(dst, v, PausedText, ResumeText)
	}
}

func drawPlayer(dst *core.Screen, v viewport, s Snapshot) {
	switch s.PlayerState {
	case StateHurt:
		v.fill(dst, s.Player, '▓', core.ColorRed)
	case StateJumping:
		v.fill(dst, s.Player, '█', core.ColorBrightWhite)
	default:
		v.fill(dst, s.Player, '▒', core.ColorWhite)
	}
}

// drawOverlay places the two overlay lines where the view's 320 and 400
// marks fall on a 640-tall view.
func drawOverlay(dst *core.Screen, v viewport, title, hint string) {
	titleRow := v.rows / 2
	hintRow := core.Max(titleRow+1, v.rows*5/8)
	dst.DrawTextCentered(titleRow, title, core.ColorBrightWhite)
	dst.DrawTextCentered(hintRow, hint, core.ColorWhite)
}
