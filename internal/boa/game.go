// Package boa adapts the creature simulation to the platform's Game
// contract. It owns what the pure simulation refuses to know about: the
// persistent board the frames paint onto, screen layout, the HUD, pause,
// and the too-small-terminal guard.
package boa

import (
	"fmt"
	"math/rand"

	"github.com/alexf2/boa/internal/core"
	"github.com/alexf2/boa/internal/sim"
)

const (
	headRune    = 'O'
	segmentRune = 'o'
	targetRune  = '*'

	// hudHeight covers the status line and its separator.
	hudHeight = 2
)

// Game implements core.Game for the creature simulation.
type Game struct {
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	round *sim.Round
	tick  uint64

	// board is a playfield-sized cell buffer. Simulation frames mutate it
	// incrementally (erase the vacated cell, draw the moved cells) and
	// Render blits it onto the screen, so the erase bookkeeping of the
	// simulation is load-bearing rather than cosmetic.
	board *core.Screen

	paused   bool
	tooSmall bool

	// Top-left corner of the playfield interior on the screen.
	boardX, boardY int
}

// New creates an unstarted game; the platform calls Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "boa"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Boa"
}

// Reset restores the initial layout: a single-cell creature a quarter of
// the way into the field heading right, the target on the centre cell.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.round = sim.NewRound(cfg.Grid, g.rng)
	g.tick = 0
	g.paused = false

	g.board = core.NewScreen(cfg.Grid.Columns(), cfg.Grid.Rows())
	g.layout()
	g.applyFrame(g.round.Frame())
}

// layout centres the playfield under the HUD and decides whether the
// screen can hold it at all.
func (g *Game) layout() {
	cols, rows := g.cfg.Grid.Columns(), g.cfg.Grid.Rows()
	requiredW := cols + 2
	requiredH := rows + 2 + hudHeight

	g.tooSmall = g.cfg.ScreenW < requiredW || g.cfg.ScreenH < requiredH
	g.boardX = (g.cfg.ScreenW - cols) / 2
	g.boardY = hudHeight + 1
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	steer, _ := input.Steer()
	out := g.round.Tick(steer)
	g.applyFrame(out.Frame)

	result := core.StepResult{State: g.State()}
	head := g.round.Body().Head()
	if out.Consumed {
		result.Events = append(result.Events, core.Event{Kind: core.EventConsumed, Cell: head})
	}
	if out.Collided {
		result.Events = append(result.Events, core.Event{Kind: core.EventReset, Cell: head})
	}
	return result
}

// applyFrame paints one simulation frame onto the persistent board:
// erasures first, then the draw list back to front. The list is ordered by
// priority with the head first, so painting it in reverse leaves the head
// on top when the target lands on a freshly reset head cell.
func (g *Game) applyFrame(f sim.Frame) {
	for _, p := range f.Erase {
		g.board.Set(g.cellX(p), g.cellY(p), ' ')
	}
	for i := len(f.Draw) - 1; i >= 0; i-- {
		c := f.Draw[i]
		g.board.SetCell(g.cellX(c.Pos), g.cellY(c.Pos), g.cellFor(c.Role))
	}
}

// cellFor maps a frame role to its rune and themed color.
func (g *Game) cellFor(role sim.Role) core.Cell {
	switch role {
	case sim.RoleHead:
		return core.Cell{Rune: headRune, Color: g.cfg.Theme.Head}
	case sim.RoleSegment:
		return core.Cell{Rune: segmentRune, Color: g.cfg.Theme.Body}
	case sim.RoleTarget:
		return core.Cell{Rune: targetRune, Color: g.cfg.Theme.Target}
	default:
		return core.Cell{Rune: ' '}
	}
}

// cellX converts a playfield position to a board column.
func (g *Game) cellX(p core.Position) int {
	return p.X / g.cfg.Grid.Cell
}

// cellY converts a playfield position to a board row.
func (g *Game) cellY(p core.Position) int {
	return p.Y / g.cfg.Grid.Cell
}

// Render draws the HUD and the playfield onto the screen buffer.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	if g.round == nil {
		return
	}

	g.renderHUD(screen)

	if g.tooSmall {
		g.renderTooSmall(screen)
		return
	}

	g.renderBoard(screen)

	if g.paused {
		screen.DrawTextCentered(g.boardY+g.cfg.Grid.Rows()/2, "Paused - press p to resume")
	}
}

// renderHUD draws the status line and its separator.
func (g *Game) renderHUD(screen *core.Screen) {
	status := fmt.Sprintf("%s  length: %d  speed: %d/s", g.Title(), g.round.Body().Len(), g.cfg.TickRate)
	if g.paused {
		status += "  [PAUSED]"
	}
	screen.DrawText(2, 0, status)
	screen.DrawHLine(0, 1, screen.Width(), '─')
}

// renderBoard draws the playfield border and blits the board cells inside.
func (g *Game) renderBoard(screen *core.Screen) {
	cols, rows := g.cfg.Grid.Columns(), g.cfg.Grid.Rows()
	screen.DrawBox(g.boardX-1, g.boardY-1, cols+2, rows+2, g.cfg.Theme.Border)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			screen.SetCell(g.boardX+x, g.boardY+y, g.board.GetCell(x, y))
		}
	}
}

// renderTooSmall tells the player how much room the playfield needs.
func (g *Game) renderTooSmall(screen *core.Screen) {
	requiredW := g.cfg.Grid.Columns() + 2
	requiredH := g.cfg.Grid.Rows() + 2 + hudHeight

	mid := screen.Height() / 2
	screen.DrawTextCentered(mid-1, "Terminal too small")
	screen.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d",
		requiredW, requiredH, g.cfg.ScreenW, g.cfg.ScreenH))
	screen.DrawTextCentered(mid+1, "resize to continue or press q to quit")
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Length: g.round.Body().Len(),
		Paused: g.paused,
	}
}
