package core

import "fmt"

// Direction is a unit vector in cell steps. The creature travels along one
// of the four axis-aligned directions; Up points toward the top of the
// screen, so its Y component is negative.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the direction that reverses d.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether o would reverse d in place.
func (d Direction) IsOpposite(o Direction) bool {
	return !d.IsZero() && o == d.Opposite()
}

// IsZero reports whether d is the zero vector, meaning no direction.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("dir(%d,%d)", d.DX, d.DY)
	}
}
