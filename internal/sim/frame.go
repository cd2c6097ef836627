package sim

import "github.com/alexf2/boa/internal/core"

// Role tags what a drawn cell represents so the renderer can pick a rune
// and color for it.
type Role int

const (
	RoleHead Role = iota
	RoleSegment
	RoleTarget
)

// FrameCell pairs a cell with the role it should be drawn as.
type FrameCell struct {
	Pos  core.Position
	Role Role
}

// Frame carries one tick's worth of drawing instructions: cells to erase,
// then cells to draw. Draw is ordered by priority, head first; a renderer
// that paints it back to front keeps the head on top when cells coincide.
// On an ordinary tick Erase holds at most the single cell the tail vacated;
// after a reset it holds the whole previously drawn body and the abandoned
// target cell.
type Frame struct {
	Draw  []FrameCell
	Erase []core.Position
}
