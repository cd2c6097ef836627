package core

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		name            string
		x, extent, cell int
		expected        int
	}{
		{"interior stays put", 300, 640, 20, 300},
		{"left edge stays put", 0, 640, 20, 0},
		{"rightmost cell stays put", 620, 640, 20, 620},
		{"step past right edge wraps to zero", 640, 640, 20, 0},
		{"step past left edge wraps to last cell", -20, 640, 20, 620},
		{"step past bottom wraps to top", 480, 480, 20, 0},
		{"step past top wraps to last row", -20, 480, 20, 460},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Wrap(tc.x, tc.extent, tc.cell)
			if result != tc.expected {
				t.Errorf("Wrap(%d, %d, %d) = %d, expected %d", tc.x, tc.extent, tc.cell, result, tc.expected)
			}
		})
	}
}

func TestGridStep(t *testing.T) {
	g := Grid{Width: 640, Height: 480, Cell: 20}

	tests := []struct {
		name     string
		from     Position
		dir      Direction
		expected Position
	}{
		{"right in the interior", P(320, 240), Right, P(340, 240)},
		{"left in the interior", P(320, 240), Left, P(300, 240)},
		{"up in the interior", P(320, 240), Up, P(320, 220)},
		{"down in the interior", P(320, 240), Down, P(320, 260)},
		{"right off the last column", P(620, 240), Right, P(0, 240)},
		{"left off the first column", P(0, 240), Left, P(620, 240)},
		{"up off the first row", P(320, 0), Up, P(320, 460)},
		{"down off the last row", P(320, 460), Down, P(320, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Step(tc.from, tc.dir)
			if result != tc.expected {
				t.Errorf("Step(%v, %v) = %v, expected %v", tc.from, tc.dir, result, tc.expected)
			}
		})
	}
}

func TestGridStepStaysAligned(t *testing.T) {
	g := Grid{Width: 100, Height: 60, Cell: 20}

	p := P(40, 20)
	for _, d := range []Direction{Right, Right, Right, Down, Down, Left, Up, Up, Up} {
		p = g.Step(p, d)
		if p.X%g.Cell != 0 || p.Y%g.Cell != 0 {
			t.Fatalf("position %v drifted off the cell raster after stepping %v", p, d)
		}
		if !g.Contains(p) {
			t.Fatalf("position %v left the playfield after stepping %v", p, d)
		}
	}
}

func TestGridAlign(t *testing.T) {
	g := Grid{Width: 640, Height: 480, Cell: 20}

	tests := []struct {
		name     string
		x, y     int
		expected Position
	}{
		{"already aligned", 320, 240, P(320, 240)},
		{"snaps down", 325, 247, P(320, 240)},
		{"origin", 0, 0, P(0, 0)},
		{"just under a boundary", 339, 259, P(320, 240)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Align(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Align(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestGridDimensions(t *testing.T) {
	g := Grid{Width: 640, Height: 480, Cell: 20}

	if g.Columns() != 32 {
		t.Errorf("Columns() = %d, expected 32", g.Columns())
	}
	if g.Rows() != 24 {
		t.Errorf("Rows() = %d, expected 24", g.Rows())
	}
	if g.CellCount() != 768 {
		t.Errorf("CellCount() = %d, expected 768", g.CellCount())
	}
	if g.Center() != P(320, 240) {
		t.Errorf("Center() = %v, expected (320,240)", g.Center())
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 100, Height: 60, Cell: 20}

	tests := []struct {
		name     string
		p        Position
		expected bool
	}{
		{"inside", P(40, 20), true},
		{"origin", P(0, 0), true},
		{"last cell", P(80, 40), true},
		{"past right edge", P(100, 20), false},
		{"past bottom edge", P(40, 60), false},
		{"negative", P(-20, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}
