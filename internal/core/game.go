package core

// Game is the contract between a game and the platform that runs it. The
// platform owns the terminal, the tick cadence, and the key mapping; the
// game owns its simulation and draws onto the screen buffer it is handed.
// Implementations are driven from a single goroutine and need no locking.
type Game interface {
	// ID returns a unique identifier, used for config and log prefixes.
	ID() string

	// Title returns the display name shown in the HUD.
	Title() string

	// Reset restores the initial state using the given configuration.
	// Called once before the first Step and again whenever the screen
	// geometry changes.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick, consuming the input
	// collected since the previous tick.
	Step(input InputFrame) StepResult

	// Render draws the current state onto the screen buffer. The buffer is
	// cleared and fully redrawn; Render must not assume prior contents.
	Render(screen *Screen)

	// State returns the current externally visible state without advancing
	// the simulation.
	State() GameState
}
