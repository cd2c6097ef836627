package boa

import "github.com/alexf2/boa/internal/core"

// Snapshot captures the externally observable simulation state at a single
// tick. Two games fed identical configs and inputs must produce identical
// snapshot sequences; the determinism test compares them tick by tick.
type Snapshot struct {
	Tick     uint64
	Head     core.Position
	Dir      core.Direction
	Segments []core.Position
	Target   core.Position
	Length   int
	Paused   bool
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		return Snapshot{}
	}

	body := g.round.Body()
	segments := make([]core.Position, len(body.Segments()))
	copy(segments, body.Segments())

	return Snapshot{
		Tick:     g.tick,
		Head:     body.Head(),
		Dir:      body.Direction(),
		Segments: segments,
		Target:   g.round.Target().Position(),
		Length:   body.Len(),
		Paused:   g.paused,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Head != o.Head || s.Dir != o.Dir ||
		s.Target != o.Target || s.Length != o.Length || s.Paused != o.Paused {
		return false
	}
	if len(s.Segments) != len(o.Segments) {
		return false
	}
	for i := range s.Segments {
		if s.Segments[i] != o.Segments[i] {
			return false
		}
	}
	return true
}
