// Package jumper implements an endless vertical jumper. A bunny bounces
// off platforms that are recycled above the view as it climbs, collecting
// carrots on the way. The run ends when it falls too far below the lowest
// platform.
package jumper

import "github.com/vovakirdan/tui-jumper/internal/physics"

// Physics groups used by the scene.
const (
	GroupPlayer physics.Group = iota
	GroupPlatform
	GroupCollectible
)

// Entity is the capability set pooled scene objects expose to the scroller,
// the spawner and the renderers.
type Entity interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Size() (w, h float64)
	// Body returns the collision body, or nil for decorations.
	Body() *physics.Body
	Active() bool
	SetActive(active bool)
	Visible() bool
	SetVisible(visible bool)
}

// flags carries the active and visible bits shared by every entity.
type flags struct {
	active  bool
	visible bool
}

func (f *flags) Active() bool            { return f.active }
func (f *flags) SetActive(active bool)   { f.active = active }
func (f *flags) Visible() bool           { return f.visible }
func (f *flags) SetVisible(visible bool) { f.visible = visible }

// bodied implements the transform methods for entities backed by a body.
type bodied struct {
	body *physics.Body
}

func (b bodied) Position() (float64, float64) { return b.body.X, b.body.Y }
func (b bodied) Size() (float64, float64)     { return b.body.W, b.body.H }
func (b bodied) Body() *physics.Body          { return b.body }

// SetPosition moves the body. Static bodies keep colliding at the old spot
// until their bounds are refreshed.
func (b bodied) SetPosition(x, y float64) {
	b.body.X, b.body.Y = x, y
}

// Platform is a static one-way surface.
type Platform struct {
	flags
	bodied
}

// NewPlatform creates a platform centred on (x, y).
func NewPlatform(x, y, w, h float64) *Platform {
	return &Platform{
		flags:  flags{active: true, visible: true},
		bodied: bodied{body: physics.NewStatic(GroupPlatform, x, y, w, h)},
	}
}

// Height returns the platform's display height.
func (p *Platform) Height() float64 { return p.body.H }

// Cloud is decoration with no collision.
type Cloud struct {
	flags
	x, y, w, h float64
}

// NewCloud creates a cloud centred on (x, y).
func NewCloud(x, y, w, h float64) *Cloud {
	return &Cloud{flags: flags{active: true, visible: true}, x: x, y: y, w: w, h: h}
}

func (c *Cloud) Position() (float64, float64) { return c.x, c.y }
func (c *Cloud) SetPosition(x, y float64)     { c.x, c.y = x, y }
func (c *Cloud) Size() (float64, float64)     { return c.w, c.h }
func (c *Cloud) Body() *physics.Body          { return nil }

// Collectible is a carrot. It falls under gravity and rests on platforms.
// Inactive carrots stay in the pool with collision disabled.
type Collectible struct {
	flags
	bodied
}

// NewCollectible creates an inactive carrot of the given size.
func NewCollectible(w, h float64) *Collectible {
	body := physics.NewDynamic(GroupCollectible, 0, 0, w, h)
	body.Enable = false
	return &Collectible{bodied: bodied{body: body}}
}

// Activate places the carrot centred on (x, y) and makes it collectable.
func (c *Collectible) Activate(x, y float64) {
	c.SetPosition(x, y)
	c.body.Stop()
	c.body.Touching = physics.Sides{}
	c.body.Enable = true
	c.active = true
	c.visible = true
}

// Deactivate hides the carrot and disables its collision.
func (c *Collectible) Deactivate() {
	c.active = false
	c.visible = false
	c.body.Enable = false
}

// PlayerState is the bunny's pose.
type PlayerState int

const (
	StateStanding PlayerState = iota
	StateJumping
	StateHurt
)

func (s PlayerState) String() string {
	switch s {
	case StateStanding:
		return "standing"
	case StateJumping:
		return "jumping"
	case StateHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// Player is the bunny. It only collides with its bottom side, so it jumps
// up through platforms and lands on them from above.
type Player struct {
	flags
	bodied
	state PlayerState
}

// NewPlayer creates a standing bunny centred on (x, y).
func NewPlayer(x, y, w, h float64) *Player {
	body := physics.NewDynamic(GroupPlayer, x, y, w, h)
	body.CheckCollision = physics.Sides{Down: true}
	return &Player{
		flags:  flags{active: true, visible: true},
		bodied: bodied{body: body},
	}
}

// State returns the current pose.
func (p *Player) State() PlayerState { return p.state }

// HalfWidth returns half the display width, used for wraparound.
func (p *Player) HalfWidth() float64 { return p.body.W * 0.5 }
