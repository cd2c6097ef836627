package sim

import (
	"math/rand"

	"github.com/alexf2/boa/internal/core"
)

// Round drives one creature and one target through discrete ticks.
type Round struct {
	grid   core.Grid
	body   *Body
	target *Target
}

// NewRound builds a fresh round on grid with the classic layout: the
// creature starts a quarter of the way into the field heading right, the
// target sits on the centre cell.
func NewRound(grid core.Grid, rng *rand.Rand) *Round {
	return &Round{
		grid:   grid,
		body:   NewBody(grid, grid.Align(grid.Width/4, grid.Height/4), core.Right),
		target: NewTarget(grid, grid.Center(), rng),
	}
}

// Body returns the creature.
func (r *Round) Body() *Body {
	return r.body
}

// Target returns the consumable.
func (r *Round) Target() *Target {
	return r.target
}

// Outcome reports what a single tick did.
type Outcome struct {
	Frame    Frame
	Consumed bool // the head reached the target
	Collided bool // the creature ran into itself and was reset
}

// Tick runs one full simulation step: commit the steering intent, advance
// the body, resolve self-collision or consumption, re-place the target when
// needed, and assemble the frame for the renderer. A zero steer means no
// intent this tick.
//
// On a collision tick the erase list covers the whole previously drawn
// creature plus the target cell it is about to leave behind.
func (r *Round) Tick(steer core.Direction) Outcome {
	if !steer.IsZero() {
		r.body.SetPendingDirection(steer)
	}

	var out Outcome
	var erase []core.Position

	if out.Collided = r.body.Advance(); out.Collided {
		erase = append(r.drawnCells(), r.target.Position())
		r.body.Reset()
		r.target.Relocate(r.body.Contains)
	} else {
		if v, ok := r.body.Vacated(); ok {
			erase = append(erase, v)
		}
		if r.body.Head() == r.target.Position() {
			out.Consumed = true
			r.body.Grow()
			r.target.Relocate(r.body.Contains)
		}
	}

	out.Frame = r.frame(erase)
	return out
}

// Frame returns the current state as a draw-only frame, used to paint the
// initial layout before the first tick.
func (r *Round) Frame() Frame {
	return r.frame(nil)
}

// drawnCells snapshots every cell the previous frame painted the creature
// on: the post-advance trailing segments plus the cell the tail just
// vacated. Together they cover the whole body as it stood before the tick.
func (r *Round) drawnCells() []core.Position {
	segs := r.body.Segments()
	cells := make([]core.Position, 0, len(segs)+1)
	cells = append(cells, segs...)
	if v, ok := r.body.Vacated(); ok {
		cells = append(cells, v)
	}
	return cells
}

// frame assembles the tick's draw list in paint order: head first, then
// trailing segments tail to head, then the target cell.
func (r *Round) frame(erase []core.Position) Frame {
	segs := r.body.Segments()
	draw := make([]FrameCell, 0, len(segs)+2)
	draw = append(draw, FrameCell{Pos: r.body.Head(), Role: RoleHead})
	for i := len(segs) - 1; i >= 0; i-- {
		draw = append(draw, FrameCell{Pos: segs[i], Role: RoleSegment})
	}
	draw = append(draw, FrameCell{Pos: r.target.Position(), Role: RoleTarget})
	return Frame{Draw: draw, Erase: erase}
}
