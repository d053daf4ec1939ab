package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one
// frame, in world units. Frontends draw from it without touching the scene.
type Snapshot struct {
	Tick   int
	Status Status
	Paused bool

	ViewW, ViewH     float64
	ScrollX, ScrollY float64

	Player      core.Box
	PlayerState PlayerState

	Platforms    []core.Box
	Clouds       []core.Box
	Collectibles []core.Box // Visible ones only

	CarrotsText string
	HighestText string
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tickCount,
		Status:      g.status,
		Paused:      g.paused,
		ViewW:       g.camera.Width,
		ViewH:       g.camera.Height,
		ScrollX:     g.camera.ScrollX,
		ScrollY:     g.camera.ScrollY,
		Player:      boxOf(g.player),
		PlayerState: g.player.State(),
		CarrotsText: g.score.CarrotsText(),
		HighestText: g.score.HighestText(),
	}

	for _, p := range g.platforms.Items() {
		s.Platforms = append(s.Platforms, boxOf(p))
	}
	for _, c := range g.clouds.Items() {
		s.Clouds = append(s.Clouds, boxOf(c))
	}
	for _, c := range g.collectibles.Items() {
		if c.Visible() {
			s.Collectibles = append(s.Collectibles, boxOf(c))
		}
	}
	return s
}

func boxOf(e Entity) core.Box {
	x, y := e.Position()
	w, h := e.Size()
	return core.BoxAround(x, y, w, h)
}
