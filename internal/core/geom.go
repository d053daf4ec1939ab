// Package core holds the pieces shared by the jumper and its frontends:
// runtime config, input actions, the screen buffer, colors and geometry.
package core

// Box is an axis-aligned box in world units. World coordinates grow
// rightwards and downwards, so a larger Y is lower on screen.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// BoxAround returns a box of size w x h centred on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the centre point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// OverlapsX reports whether the horizontal extents of two boxes overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.X < other.Right() && other.X < b.Right()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
