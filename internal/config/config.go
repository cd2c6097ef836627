// Package config provides YAML-based configuration loading for boa:
// playfield geometry, simulation speed, and theme colors.
package config

import (
	"fmt"
	"strings"

	"github.com/alexf2/boa/internal/core"
)

// Config contains every tunable the game reads at startup.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
	Theme ThemeConfig `yaml:"theme"`
}

// GridConfig defines the playfield in pixel units. Width and height must be
// positive multiples of the cell size; one cell maps to one character on
// screen.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Cell   int `yaml:"cell"`
}

// SpeedConfig defines the simulation cadence.
type SpeedConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// ThemeConfig names the color of each drawn element. Valid names are the
// terminal palette entries, e.g. "red", "bright_green", "cyan".
type ThemeConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Target string `yaml:"target"`
	Border string `yaml:"border"`
}

// Validate checks the invariants the rest of the program assumes.
func (c Config) Validate() error {
	g := c.Grid
	if g.Cell <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %d", g.Cell)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("config: playfield %dx%d must have positive extents", g.Width, g.Height)
	}
	if g.Width%g.Cell != 0 || g.Height%g.Cell != 0 {
		return fmt.Errorf("config: playfield %dx%d is not a multiple of the cell size %d", g.Width, g.Height, g.Cell)
	}
	// The target relocates by rejection sampling, so the field needs spare
	// room beyond the creature's starting cell and the target itself.
	if g.Width/g.Cell < 2 || g.Height/g.Cell < 2 {
		return fmt.Errorf("config: playfield must be at least 2x2 cells, got %dx%d", g.Width/g.Cell, g.Height/g.Cell)
	}

	if c.Speed.TicksPerSecond < 1 {
		return fmt.Errorf("config: ticks_per_second must be at least 1, got %d", c.Speed.TicksPerSecond)
	}

	for _, role := range []struct {
		name  string
		value string
	}{
		{"head", c.Theme.Head},
		{"body", c.Theme.Body},
		{"target", c.Theme.Target},
		{"border", c.Theme.Border},
	} {
		if _, ok := core.ParseColor(role.value); !ok {
			return fmt.Errorf("config: unknown %s color %q (valid: %s)",
				role.name, role.value, strings.Join(core.ColorNames(), ", "))
		}
	}
	return nil
}

// Runtime assembles the core.RuntimeConfig for a validated Config, the
// given screen size, and the seed.
func (c Config) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid: core.Grid{
			Width:  c.Grid.Width,
			Height: c.Grid.Height,
			Cell:   c.Grid.Cell,
		},
		Theme:    c.theme(),
		TickRate: c.Speed.TicksPerSecond,
		Seed:     seed,
		ScreenW:  screenW,
		ScreenH:  screenH,
	}
}

// theme resolves the configured color names. Unknown names fall back to the
// terminal default; Validate reports them before this runs.
func (c Config) theme() core.Theme {
	head, _ := core.ParseColor(c.Theme.Head)
	body, _ := core.ParseColor(c.Theme.Body)
	target, _ := core.ParseColor(c.Theme.Target)
	border, _ := core.ParseColor(c.Theme.Border)
	return core.Theme{Head: head, Body: body, Target: target, Border: border}
}
