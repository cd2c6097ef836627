package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so games never see raw input.
type Action int

const (
	ActionNone Action = iota
	ActionPause // P, Escape - pause/unpause the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player requested between two
// simulation ticks. Actions accumulate as a set, but steering intents
// funnel into a single slot: each SetSteer overwrites the previous one, so
// only the most recent direction pressed before a tick reaches the game.
type InputFrame struct {
	actions  map[Action]bool
	steer    Direction
	hasSteer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.actions == nil {
		return false
	}
	return f.actions[a]
}

// SetSteer records a steering intent, replacing any earlier one in the
// same frame.
func (f *InputFrame) SetSteer(d Direction) {
	f.steer = d
	f.hasSteer = true
}

// Steer returns the steering intent for this frame, if any.
func (f InputFrame) Steer() (Direction, bool) {
	return f.steer, f.hasSteer
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.actions {
		delete(f.actions, k)
	}
	f.steer = Direction{}
	f.hasSteer = false
}
