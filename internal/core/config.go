package core

// Theme assigns a color to each element the game draws.
type Theme struct {
	Head   Color
	Body   Color
	Target Color
	Border Color
}

// DefaultTheme returns the classic palette: a bright green head on a green
// body, a red target, and a cyan playfield border.
func DefaultTheme() Theme {
	return Theme{
		Head:   ColorBrightGreen,
		Body:   ColorGreen,
		Target: ColorRed,
		Border: ColorCyan,
	}
}

// RuntimeConfig contains everything a game needs at initialization: the
// playfield, the theme, timing, the determinism seed, and the screen it
// has to fit into.
type RuntimeConfig struct {
	Grid     Grid
	Theme    Theme
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with the classic field proportions:
// a 640x480 playfield of 20-pixel cells stepping three times per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:     Grid{Width: 640, Height: 480, Cell: 20},
		Theme:    DefaultTheme(),
		TickRate: 3,
		Seed:     0,
		ScreenW:  80,
		ScreenH:  24,
	}
}

// GameState represents the externally visible state of a game, returned by
// Game.State() to communicate status to the platform.
type GameState struct {
	Length int  // Creature length in cells, head included
	Paused bool // Whether the simulation is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	// EventConsumed fires when the head reaches the target.
	EventConsumed EventKind = iota
	// EventReset fires when the creature collides with itself and restarts.
	EventReset
)

// Event records a single tick occurrence and the cell it happened on.
type Event struct {
	Kind EventKind
	Cell Position
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
