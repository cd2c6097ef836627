package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexf2/boa/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration boa would play with, after applying the
config file search order and any flags, as YAML.

Useful as a starting point for a custom config:
  boa config > ~/.boa/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSpeed > 0 {
		cfg.Speed.TicksPerSecond = flagSpeed
	}

	out, err := config.Dump(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering config: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
