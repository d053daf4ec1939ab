package physics

import (
	"math"
	"strconv"

	"github.com/solarlune/resolv"
)

// Overlap is one intersecting pair found by a step. A belongs to the first
// group passed to World.Overlap, B to the second.
type Overlap struct {
	A, B *Body
}

// landSlop absorbs rounding when a resting body is re-tested against the
// surface it was snapped to.
const landSlop = 1e-6

// The resolv space is a fixed window onto the world. Recenter slides it to
// follow the action; bodies outside it neither land nor overlap.
const (
	spaceW = 1536
	spaceH = 2048
	cellW  = 32
	cellH  = 32

	// maxMove is the largest vertical move checked at once. Faster bodies
	// are moved in several sub-steps so they cannot skip a surface.
	maxMove = cellH / 2
)

type pair struct {
	a, b Group
}

// World integrates dynamic bodies and resolves them against static ones.
// It is not safe for concurrent use; the owning game loop steps it.
type World struct {
	Gravity float64 // Units per second squared, positive is down

	space     *resolv.Space
	originX   float64 // World position of the space's top-left corner
	originY   float64
	bodies    []*Body
	colliders []pair
	overlaps  []pair
	paused    bool
}

// NewWorld creates an empty world whose space is centred on (0, 0).
func NewWorld(gravity float64) *World {
	return &World{
		Gravity: gravity,
		space:   resolv.NewSpace(spaceW, spaceH, cellW, cellH),
		originX: -spaceW / 2,
		originY: -spaceH / 2,
	}
}

func groupTag(g Group) string {
	return "group" + strconv.Itoa(int(g))
}

// Add registers bodies with the world.
func (w *World) Add(bodies ...*Body) {
	for _, b := range bodies {
		box := b.Bounds()
		obj := resolv.NewObject(0, 0, box.W, box.H, groupTag(b.Group))
		obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
		obj.Data = b
		b.obj = obj
		b.world = w
		w.space.Add(obj)
		w.place(b)
		w.bodies = append(w.bodies, b)
	}
}

// place moves b's collision object to its current bounds. Static bodies use
// their cached bounds, so an unrefreshed platform stays where it was.
func (w *World) place(b *Body) {
	box := b.Bounds()
	b.obj.Position.X = box.X - w.originX
	b.obj.Position.Y = box.Y - w.originY
	b.obj.Update()
}

// Recenter slides the simulated window so world y is near its middle. The
// window only moves once y has drifted a quarter of its height away.
func (w *World) Recenter(y float64) {
	originY := y - spaceH/2
	if math.Abs(originY-w.originY) < spaceH/4 {
		return
	}
	w.originY = originY
	for _, b := range w.bodies {
		w.place(b)
	}
}

// Collide makes dynamic bodies in group a land on static bodies in group b.
// Landing is one-way: only a body whose centre is above the top edge is
// stopped, so bodies jump up through platforms.
func (w *World) Collide(a, b Group) {
	w.colliders = append(w.colliders, pair{a, b})
}

// Overlap asks Step to report intersections between groups a and b.
func (w *World) Overlap(a, b Group) {
	w.overlaps = append(w.overlaps, pair{a, b})
}

// Pause freezes the simulation; Step becomes a no-op.
func (w *World) Pause() { w.paused = true }

// Resume undoes Pause.
func (w *World) Resume() { w.paused = false }

// Paused reports whether the world is frozen.
func (w *World) Paused() bool { return w.paused }

// Step advances the simulation by dt seconds and returns the overlaps found
// after movement. The caller handles them before running its own update for
// the frame.
func (w *World) Step(dt float64) []Overlap {
	if w.paused {
		return nil
	}

	for _, b := range w.bodies {
		if !b.Enable || b.Static {
			continue
		}
		w.move(b, dt)
	}

	return w.findOverlaps()
}

// move integrates b, landing it on the first surface met on the way down.
func (w *World) move(b *Body, dt float64) {
	b.Touching = Sides{}
	if b.AllowGravity {
		b.VY += w.Gravity * dt
	}
	b.X += b.VX * dt
	w.place(b)

	dy := b.VY * dt
	steps := int(math.Ceil(math.Abs(dy) / maxMove))
	if steps < 1 {
		steps = 1
	}
	step := dy / float64(steps)
	for range steps {
		if w.land(b, step) {
			return
		}
		b.Y += step
		w.place(b)
	}
}

// landTags returns the tags of the groups b lands on.
func (w *World) landTags(g Group) []string {
	var tags []string
	for _, c := range w.colliders {
		if c.a == g {
			tags = append(tags, groupTag(c.b))
		}
	}
	return tags
}

// land checks moving b down by dy. If that reaches the top of a static body
// whose top is not above b's centre, b is snapped onto the highest such top
// and land reports true. A body that starts slightly sunk into a surface is
// lifted out of it.
func (w *World) land(b *Body, dy float64) bool {
	if !b.CheckCollision.Down || dy <= 0 {
		return false
	}
	tags := w.landTags(b.Group)
	if len(tags) == 0 {
		return false
	}
	check := b.obj.Check(0, dy, tags...)
	if check == nil {
		return false
	}

	box := b.Bounds()
	var ground *Body
	for _, o := range check.Objects {
		s, ok := o.Data.(*Body)
		if !ok || !s.Static || !s.Enable {
			continue
		}
		sb := s.Bounds()
		if !box.OverlapsX(sb) {
			continue
		}
		if b.Y > sb.Y+landSlop || box.Bottom()+dy < sb.Y {
			continue
		}
		if ground == nil || sb.Y < ground.Top() {
			ground = s
		}
	}
	if ground == nil {
		return false
	}

	b.Y += check.ContactWithObject(ground.obj).Y
	b.VY = 0
	b.Touching.Down = true
	w.place(b)
	return true
}

func (w *World) findOverlaps() []Overlap {
	var found []Overlap
	for _, p := range w.overlaps {
		tag := groupTag(p.b)
		for _, a := range w.bodies {
			if a.Group != p.a || !a.Enable {
				continue
			}
			check := a.obj.Check(0, 0, tag)
			if check == nil {
				continue
			}
			for _, o := range check.Objects {
				b, ok := o.Data.(*Body)
				if !ok || !b.Enable {
					continue
				}
				if a.Bounds().Intersects(b.Bounds()) {
					found = append(found, Overlap{A: a, B: b})
				}
			}
		}
	}
	return found
}
