package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// PlayerController runs the bunny's per-frame logic: automatic bounce,
// airborne steering, pose and horizontal wraparound.
type PlayerController struct {
	player *Player
	sound  audio.Player

	jumpVelocity float64
	moveSpeed    float64
	worldWidth   float64
}

// NewPlayerController creates a controller for p.
func NewPlayerController(p *Player, sound audio.Player, cfg config.JumperConfig) *PlayerController {
	return &PlayerController{
		player:       p,
		sound:        sound,
		jumpVelocity: cfg.Player.JumpVelocity,
		moveSpeed:    cfg.Player.MoveSpeed,
		worldWidth:   cfg.World.Width,
	}
}

// Tick applies one frame of input and reports whether the bunny bounced.
// A hurt bunny is left alone.
func (c *PlayerController) Tick(in core.InputFrame) bool {
	p := c.player
	if p.state == StateHurt {
		return false
	}
	body := p.Body()
	grounded := body.Touching.Down

	if grounded {
		body.VY = c.jumpVelocity
		p.state = StateJumping
		c.sound.Play(audio.SoundJump)
	}

	if body.VY > 0 && p.state != StateStanding {
		p.state = StateStanding
	}

	// Steering only works in the air; touching down zeroes vx.
	switch {
	case in.Has(core.ActionLeft) && !grounded:
		body.VX = -c.moveSpeed
	case in.Has(core.ActionRight) && !grounded:
		body.VX = c.moveSpeed
	default:
		body.VX = 0
	}

	c.Wrap()
	return grounded
}

// Wrap teleports the bunny to the opposite side once it is fully off one
// edge. Velocity is untouched.
func (c *PlayerController) Wrap() {
	half := c.player.HalfWidth()
	x, y := c.player.Position()
	switch {
	case x < -half:
		c.player.SetPosition(c.worldWidth+half, y)
	case x > c.worldWidth+half:
		c.player.SetPosition(-half, y)
	}
}

// Hurt switches to the terminal hurt pose.
func (c *PlayerController) Hurt() {
	c.player.state = StateHurt
}
