// Package core provides the dependency-free foundation shared by the
// simulation and the terminal platform: grid geometry, directions, the
// screen buffer, input frames, and the Game seam between the two sides.
// Nothing here imports outside the standard library, which keeps game
// logic pure and testable without a terminal.
package core

import "fmt"

// Position is a pair of pixel coordinates. Every position the simulation
// produces is aligned to the grid cell size, with both axes in [0, extent).
type Position struct {
	X, Y int
}

// P is a shorthand constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid describes the playfield: pixel extents plus the cell size all
// positions are aligned to. Both extents must be positive multiples of
// Cell; config validation enforces that before a Grid is built.
type Grid struct {
	Width  int
	Height int
	Cell   int
}

// Columns returns the number of cells per row.
func (g Grid) Columns() int {
	return g.Width / g.Cell
}

// Rows returns the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.Cell
}

// CellCount returns the total number of cells on the playfield.
func (g Grid) CellCount() int {
	return g.Columns() * g.Rows()
}

// Align snaps pixel coordinates down to the top-left corner of the cell
// they fall in.
func (g Grid) Align(x, y int) Position {
	return Position{X: x - x%g.Cell, Y: y - y%g.Cell}
}

// Center returns the cell at the middle of the playfield.
func (g Grid) Center() Position {
	return g.Align(g.Width/2, g.Height/2)
}

// Contains reports whether p lies inside the playfield bounds.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Step moves one cell from p in direction d, wrapping toroidally: leaving
// one edge re-enters at the opposite edge of the same axis.
func (g Grid) Step(p Position, d Direction) Position {
	return Position{
		X: Wrap(p.X+d.DX*g.Cell, g.Width, g.Cell),
		Y: Wrap(p.Y+d.DY*g.Cell, g.Height, g.Cell),
	}
}

// Wrap maps a coordinate that stepped outside [0, extent) back onto the
// opposite edge. Inputs move at most one cell past an edge, so the result
// is either unchanged or lands exactly on 0 or extent-cell, keeping every
// wrapped coordinate cell-aligned.
func Wrap(x, extent, cell int) int {
	if x < 0 {
		return extent - cell
	}
	if x > extent-cell {
		return 0
	}
	return x
}
