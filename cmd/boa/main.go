// boa is a terminal remake of the classic creature game: steer a growing
// creature across a wrap-around playfield, eat the target, and avoid
// running into yourself.
//
// Usage:
//
//	boa           - Play in the current terminal
//	boa config    - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Config YAML (default: ~/.boa/config.yaml if present)
//	--speed <n>        - Simulation ticks per second (overrides config)
//	--seed <value>     - Set RNG seed for reproducible target placement
//	--log-file <path>  - Append structured logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSpeed   int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boa",
	Short: "Boa - the classic creature game in your terminal",
	Long: `Boa is a terminal rendition of the classic creature game. The
creature moves on a fixed grid, grows by one segment for every target it
eats, wraps around the playfield edges, and restarts from its head cell
when it bites itself.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  boa
  boa --speed 6
  boa --seed 42 --log-file ./boa.log
  boa --config ./my-boa.yaml
  boa config > ~/.boa/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Ticks per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append structured logs to this file")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}
