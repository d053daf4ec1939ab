// Package physics is a small arcade-style simulation on top of a resolv
// space: gravity, one-way landing on static bodies and overlap detection.
// It knows nothing about the jumper scene that drives it.
package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Group tags bodies so the world knows which pairs to test.
type Group int

// Sides is a per-side flag set, used both for collision toggles and for the
// contacts reported after a step.
type Sides struct {
	Up, Down, Left, Right bool
}

// AllSides returns a set with every side enabled.
func AllSides() Sides {
	return Sides{Up: true, Down: true, Left: true, Right: true}
}

// Body is a rectangular physics body positioned by its centre.
type Body struct {
	Group Group

	X, Y   float64 // Centre
	W, H   float64
	VX, VY float64

	Static       bool // Never moved by the world
	Enable       bool // Disabled bodies are skipped entirely
	AllowGravity bool

	// CheckCollision selects which sides of a dynamic body can be blocked.
	CheckCollision Sides
	// Touching holds the contacts found by the last step.
	Touching Sides

	bounds core.Box
	obj    *resolv.Object // Set once the body is added to a World
	world  *World
}

// NewStatic creates an enabled static body with its bounds already computed.
func NewStatic(g Group, x, y, w, h float64) *Body {
	b := &Body{Group: g, X: x, Y: y, W: w, H: h, Static: true, Enable: true}
	b.Refresh()
	return b
}

// NewDynamic creates an enabled body affected by gravity that collides on
// every side.
func NewDynamic(g Group, x, y, w, h float64) *Body {
	return &Body{
		Group:          g,
		X:              x,
		Y:              y,
		W:              w,
		H:              h,
		Enable:         true,
		AllowGravity:   true,
		CheckCollision: AllSides(),
	}
}

// Refresh recomputes the cached bounds of a static body from its position
// and size and moves its collision object there. Moving a static body
// without calling Refresh leaves its collision box where it was.
func (b *Body) Refresh() {
	b.bounds = core.BoxAround(b.X, b.Y, b.W, b.H)
	if b.world != nil {
		b.world.place(b)
	}
}

// Bounds returns the collision box. Static bodies report their cached box.
func (b *Body) Bounds() core.Box {
	if b.Static {
		return b.bounds
	}
	return core.BoxAround(b.X, b.Y, b.W, b.H)
}

// Top returns the y-coordinate of the top edge of the collision box.
func (b *Body) Top() float64 {
	return b.Bounds().Y
}

// Bottom returns the y-coordinate of the bottom edge of the collision box.
func (b *Body) Bottom() float64 {
	return b.Bounds().Bottom()
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.VX, b.VY = 0, 0
}
