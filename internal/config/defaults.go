package config

import (
	_ "embed"
)

//go:embed defaults/boa.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration: the classic 640x480
// playfield of 20-pixel cells at three ticks per second.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  640,
			Height: 480,
			Cell:   20,
		},
		Speed: SpeedConfig{
			TicksPerSecond: 3,
		},
		Theme: ThemeConfig{
			Head:   "bright_green",
			Body:   "green",
			Target: "red",
			Border: "cyan",
		},
	}
}
