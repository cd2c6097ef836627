// Package sim implements the creature simulation: a segmented body crawling
// a toroidal grid, the single target it hunts, and the round controller that
// ties them together one tick at a time. The package is pure and
// deterministic; input, rendering, and timing belong to the platform.
package sim

import "github.com/alexf2/boa/internal/core"

// Body is the segmented creature. The head is held apart from the trailing
// segments: trailing[0] is the cell immediately behind the head and the last
// entry is the tail. The occupied set mirrors trailing exactly and serves
// the O(1) membership checks for self-collision and target placement; the
// head is never in it.
type Body struct {
	grid core.Grid

	head     core.Position
	trailing []core.Position
	occupied map[core.Position]struct{}

	dir        core.Direction
	startDir   core.Direction
	pendingDir core.Direction
	hasPending bool

	growPending bool

	vacated    core.Position
	hasVacated bool
}

// NewBody creates a single-cell creature with its head at start, facing dir.
func NewBody(grid core.Grid, start core.Position, dir core.Direction) *Body {
	return &Body{
		grid:     grid,
		head:     start,
		occupied: make(map[core.Position]struct{}),
		dir:      dir,
		startDir: dir,
	}
}

// Head returns the position of the foremost segment.
func (b *Body) Head() core.Position {
	return b.head
}

// Direction returns the active travel direction.
func (b *Body) Direction() core.Direction {
	return b.dir
}

// Len returns the creature's length in cells, head included.
func (b *Body) Len() int {
	return len(b.trailing) + 1
}

// Segments returns the trailing segments: index 0 sits just behind the
// head, the last entry is the tail. Callers must not modify the slice.
func (b *Body) Segments() []core.Position {
	return b.trailing
}

// SetPendingDirection queues d to take effect on the next Advance. A
// request that would reverse the active direction is dropped. The check
// runs against the direction the body is travelling now, not against an
// earlier queued turn, so a reversal cannot be smuggled in with two
// presses between ticks.
func (b *Body) SetPendingDirection(d core.Direction) {
	if d.IsOpposite(b.dir) {
		return
	}
	b.pendingDir = d
	b.hasPending = true
}

// Advance moves the creature one cell along its direction, wrapping at the
// playfield edges, and reports whether the new head cell is already held by
// a trailing segment.
//
// The old head joins the trailing segments. Without pending growth the tail
// cell is released and remembered for Vacated; with pending growth the tail
// stays and the body gains one segment. A bodiless creature just leaves its
// old head cell behind.
func (b *Body) Advance() bool {
	if b.hasPending {
		b.dir = b.pendingDir
		b.hasPending = false
	}

	b.hasVacated = false
	switch {
	case b.growPending:
		b.pushFront(b.head)
		b.growPending = false
	case len(b.trailing) > 0:
		tail := b.trailing[len(b.trailing)-1]
		b.trailing = b.trailing[:len(b.trailing)-1]
		delete(b.occupied, tail)
		b.vacated = tail
		b.hasVacated = true
		b.pushFront(b.head)
	default:
		b.vacated = b.head
		b.hasVacated = true
	}

	b.head = b.grid.Step(b.head, b.dir)
	_, hit := b.occupied[b.head]
	return hit
}

// pushFront inserts p as the segment immediately behind the head, keeping
// the occupied set in sync.
func (b *Body) pushFront(p core.Position) {
	b.trailing = append([]core.Position{p}, b.trailing...)
	b.occupied[p] = struct{}{}
}

// Grow marks the body to keep its tail on the next Advance, extending the
// creature by one segment.
func (b *Body) Grow() {
	b.growPending = true
}

// Contains reports whether p is held by a trailing segment. The head is not
// part of the set; check Head separately.
func (b *Body) Contains(p core.Position) bool {
	_, ok := b.occupied[p]
	return ok
}

// Vacated returns the cell released by the most recent Advance, if any. A
// growing advance releases nothing.
func (b *Body) Vacated() (core.Position, bool) {
	return b.vacated, b.hasVacated
}

// Reset returns the body to a fresh single-cell state: trailing segments,
// the occupied set, and any queued turn or growth are discarded, and the
// starting direction is restored. The head keeps its current cell, so after
// a collision the creature crawls on from where it died.
func (b *Body) Reset() {
	b.trailing = nil
	clear(b.occupied)
	b.dir = b.startDir
	b.hasPending = false
	b.growPending = false
	b.hasVacated = false
}
