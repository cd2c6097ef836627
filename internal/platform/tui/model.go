package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/alexf2/boa/internal/core"
)

// Model is the Bubble Tea model for a play session: it pumps ticks into the
// game, funnels keys into the per-tick input frame, and renders the screen
// buffer with a help bar underneath.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	tickEvery  time.Duration
	ticks      uint64
	quitting   bool
}

// NewModel creates a play-session model for the given game. The bottom
// screen line is reserved for the help bar; the game gets the rest.
func NewModel(game core.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	helpModel := help.New()
	helpModel.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       helpModel,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		tickEvery:  tickInterval(cfg.TickRate),
	}
}

// gameConfig returns the runtime config handed to the game, with the help
// bar line carved out of the screen height.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-1, 1)
	return cfg
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("session started",
		"game", m.game.ID(),
		"grid", fmt.Sprintf("%dx%d/%d", m.config.Grid.Width, m.config.Grid.Height, m.config.Grid.Cell),
		"tick_rate", m.config.TickRate,
		"seed", m.config.Seed)

	return tickCmd(m.tickEvery)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("session ended", "ticks", m.ticks, "length", m.gameState.Length)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Up):
		m.inputFrame.SetSteer(core.Up)
	case key.Matches(msg, m.keys.Down):
		m.inputFrame.SetSteer(core.Down)
	case key.Matches(msg, m.keys.Left):
		m.inputFrame.SetSteer(core.Left)
	case key.Matches(msg, m.keys.Right):
		m.inputFrame.SetSteer(core.Right)

	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

// handleResize processes window resize events. The playfield geometry is
// fixed by config, so a resize only relays new screen bounds to the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))

	m.game.Reset(m.gameConfig())
	m.logger.Info("screen resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick runs one simulation step and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++

	result := m.game.Step(m.inputFrame)

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventConsumed:
			m.logger.Info("target consumed", "cell", ev.Cell, "length", result.State.Length)
		case core.EventReset:
			m.logger.Info("self collision, creature reset", "cell", ev.Cell)
		}
	}
	if result.State.Paused != m.gameState.Paused {
		if result.State.Paused {
			m.logger.Info("paused", "tick", m.ticks)
		} else {
			m.logger.Info("resumed", "tick", m.ticks)
		}
	}
	m.gameState = result.State

	m.inputFrame.Clear()

	return m, tickCmd(m.tickEvery)
}

// saveScreenshot writes the current screen as plain text to the per-user
// screenshots directory. Best effort; the game continues regardless.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".boa", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game and blocks until
// the session ends.
func Run(game core.Game, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
