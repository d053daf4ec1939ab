package core

// Game is the interface a frontend drives.
// Implementations contain pure logic; the platform handles input mapping,
// timing and presentation.
type Game interface {
	// ID returns a unique identifier used for storage keys and file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh scene for the given runtime configuration.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
