package sim

import (
	"math/rand"

	"github.com/alexf2/boa/internal/core"
)

// Target is the consumable the creature hunts: a single cell that jumps to
// a fresh random spot whenever it is eaten or a reset leaves it unusable.
type Target struct {
	grid core.Grid
	pos  core.Position
	rng  *rand.Rand
}

// NewTarget places a target at start. It stays there until the first
// Relocate.
func NewTarget(grid core.Grid, start core.Position, rng *rand.Rand) *Target {
	return &Target{
		grid: grid,
		pos:  start,
		rng:  rng,
	}
}

// Position returns the cell the target currently sits on.
func (t *Target) Position() core.Position {
	return t.pos
}

// Relocate draws uniformly random cells until it finds one that is neither
// the current cell nor rejected by occupied, then moves there and returns
// the new cell. The loop does not terminate when occupied rejects every
// other cell; callers keep the playfield comfortably larger than the
// creature.
func (t *Target) Relocate(occupied func(core.Position) bool) core.Position {
	for {
		p := core.Position{
			X: t.rng.Intn(t.grid.Columns()) * t.grid.Cell,
			Y: t.rng.Intn(t.grid.Rows()) * t.grid.Cell,
		}
		if p == t.pos || occupied(p) {
			continue
		}
		t.pos = p
		return p
	}
}
