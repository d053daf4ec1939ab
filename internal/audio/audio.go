// Package audio plays the jumper's sound effects and background loop.
// Everything is synthesized; there are no asset files to load.
package audio

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundJump Sound = iota
	SoundPickup
)

// String returns the effect name used in logs.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Player is what the game calls to make noise. Implementations must not
// block the caller.
type Player interface {
	Play(s Sound)
	PlayMusic()
	StopMusic()
}

// Nop is a silent Player, used for SSH sessions, tests and --mute.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) PlayMusic() {}
func (Nop) StopMusic() {}
