package sim

import (
	"math/rand"
	"testing"

	"github.com/alexf2/boa/internal/core"
)

func newTestRound(seed int64) *Round {
	return NewRound(testGrid(), rand.New(rand.NewSource(seed)))
}

func TestNewRoundLayout(t *testing.T) {
	r := newTestRound(1)

	if r.Body().Head() != core.P(160, 120) {
		t.Errorf("head = %v, expected the quarter-field start (160,120)", r.Body().Head())
	}
	if r.Body().Direction() != core.Right {
		t.Errorf("direction = %v, expected right", r.Body().Direction())
	}
	if r.Body().Len() != 1 {
		t.Errorf("length = %d, expected 1", r.Body().Len())
	}
	if r.Target().Position() != core.P(320, 240) {
		t.Errorf("target = %v, expected the centre cell (320,240)", r.Target().Position())
	}

	f := r.Frame()
	if len(f.Draw) != 2 {
		t.Fatalf("initial frame draws %d cells, expected head and target", len(f.Draw))
	}
	if f.Draw[0].Role != RoleHead || f.Draw[1].Role != RoleTarget {
		t.Errorf("initial frame roles = %v, %v, expected head then target", f.Draw[0].Role, f.Draw[1].Role)
	}
	if len(f.Erase) != 0 {
		t.Errorf("initial frame erases %v, expected nothing", f.Erase)
	}
}

func TestTickMovesAndVacates(t *testing.T) {
	r := newTestRound(1)

	out := r.Tick(core.Direction{})

	if out.Collided || out.Consumed {
		t.Fatalf("plain tick reported collided=%v consumed=%v", out.Collided, out.Consumed)
	}
	if r.Body().Head() != core.P(180, 120) {
		t.Errorf("head = %v, expected (180,120)", r.Body().Head())
	}
	if len(out.Frame.Erase) != 1 || out.Frame.Erase[0] != core.P(160, 120) {
		t.Errorf("erase = %v, expected just the vacated cell (160,120)", out.Frame.Erase)
	}
}

func TestTickSteersThroughPendingSlot(t *testing.T) {
	r := newTestRound(1)

	r.Tick(core.Down)
	if r.Body().Head() != core.P(160, 140) {
		t.Errorf("head = %v, expected (160,140) after steering down", r.Body().Head())
	}

	// No intent keeps the committed direction.
	r.Tick(core.Direction{})
	if r.Body().Head() != core.P(160, 160) {
		t.Errorf("head = %v, expected (160,160)", r.Body().Head())
	}

	// A reversal against the active direction is dropped.
	r.Tick(core.Up)
	if r.Body().Head() != core.P(160, 180) {
		t.Errorf("head = %v, reversal must be ignored", r.Body().Head())
	}
}

func TestFrameOrder(t *testing.T) {
	r := newTestRound(1)
	b := r.Body()
	for i := 0; i < 3; i++ {
		b.Grow()
		b.Advance()
	}

	f := r.Frame()

	if len(f.Draw) != 5 {
		t.Fatalf("frame draws %d cells, expected 5 (head, 3 segments, target)", len(f.Draw))
	}
	if f.Draw[0].Role != RoleHead || f.Draw[0].Pos != b.Head() {
		t.Errorf("draw[0] = %+v, expected the head first", f.Draw[0])
	}
	segs := b.Segments()
	for i := 0; i < len(segs); i++ {
		got := f.Draw[1+i]
		want := segs[len(segs)-1-i] // tail first
		if got.Role != RoleSegment || got.Pos != want {
			t.Errorf("draw[%d] = %+v, expected segment %v", 1+i, got, want)
		}
	}
	last := f.Draw[len(f.Draw)-1]
	if last.Role != RoleTarget || last.Pos != r.Target().Position() {
		t.Errorf("draw[last] = %+v, expected the target", last)
	}
}

func TestConsumeGrowsAndRelocates(t *testing.T) {
	r := newTestRound(5)
	r.target.pos = core.P(180, 120) // directly in the creature's path

	out := r.Tick(core.Direction{})

	if !out.Consumed {
		t.Fatal("reaching the target cell must report a consumption")
	}
	if out.Collided {
		t.Fatal("consumption must not be a collision")
	}
	if r.Target().Position() == core.P(180, 120) {
		t.Error("target must move after being consumed")
	}
	// Growth lands on the next advance.
	if r.Body().Len() != 1 {
		t.Errorf("length = %d right after consuming, expected still 1", r.Body().Len())
	}

	out = r.Tick(core.Direction{})
	if r.Body().Len() != 2 {
		t.Fatalf("length = %d one tick after consuming, expected 2", r.Body().Len())
	}
	segs := r.Body().Segments()
	if len(segs) != 1 || segs[0] != core.P(180, 120) {
		t.Errorf("trailing = %v, expected the consumed cell (180,120)", segs)
	}
	if r.Body().Contains(r.Target().Position()) || r.Target().Position() == r.Body().Head() {
		t.Errorf("target %v landed on the creature", r.Target().Position())
	}
	if out.Frame.Erase != nil {
		t.Errorf("growing tick erased %v, expected nothing", out.Frame.Erase)
	}
}

func TestCollisionResetsInPlace(t *testing.T) {
	r := newTestRound(9)
	b := r.Body()
	for i := 0; i < 4; i++ {
		b.Grow()
		b.Advance()
	}

	r.Tick(core.Down)
	r.Tick(core.Left)
	out := r.Tick(core.Up)

	if !out.Collided {
		t.Fatal("turning back into the body must collide")
	}
	if b.Len() != 1 {
		t.Errorf("length = %d after reset, expected 1", b.Len())
	}
	if b.Direction() != core.Right {
		t.Errorf("direction = %v after reset, expected right", b.Direction())
	}

	// The reset frame redraws just the head and the re-placed target.
	if len(out.Frame.Draw) != 2 {
		t.Errorf("reset frame draws %d cells, expected 2", len(out.Frame.Draw))
	}
	if out.Frame.Draw[0].Pos != b.Head() || out.Frame.Draw[0].Role != RoleHead {
		t.Errorf("reset frame draw[0] = %+v, expected the surviving head", out.Frame.Draw[0])
	}

	// Every cell the creature stood on before the collision is erased, and
	// so is the cell the relocating target leaves behind.
	if len(out.Frame.Erase) != 6 {
		t.Fatalf("reset frame erases %d cells, expected the length-5 body plus the old target", len(out.Frame.Erase))
	}
	erased := make(map[core.Position]bool, len(out.Frame.Erase))
	for _, p := range out.Frame.Erase {
		erased[p] = true
	}
	if !erased[core.P(200, 120)] || !erased[core.P(220, 140)] || !erased[core.P(240, 140)] ||
		!erased[core.P(240, 120)] || !erased[core.P(220, 120)] {
		t.Errorf("erase list %v misses part of the pre-collision body", out.Frame.Erase)
	}
	if !erased[core.P(320, 240)] {
		t.Errorf("erase list %v misses the abandoned target cell", out.Frame.Erase)
	}
}

func TestTargetNeverLandsOnTrailingSegments(t *testing.T) {
	r := newTestRound(11)
	b := r.Body()
	for i := 0; i < 6; i++ {
		b.Grow()
		b.Advance()
	}

	for i := 0; i < 100; i++ {
		p := r.target.Relocate(b.Contains)
		if b.Contains(p) {
			t.Fatalf("relocation %d landed on the body at %v", i+1, p)
		}
	}
}
