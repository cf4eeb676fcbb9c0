// blocchi runs the falling-block engine headless: autoplay simulations,
// strategy listings and shape tables.
//
// Usage:
//
//	blocchi sim              - Let a bot play one or more games
//	blocchi bots             - List available bots
//	blocchi shapes           - Print every shape in every rotation
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default from config: 60)
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocchi/internal/config"

	// Import bots to register them
	_ "github.com/vovakirdan/blocchi/internal/bots"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocchi",
	Short: "blocchi - a falling-block puzzle engine",
	Long: `blocchi is a deterministic falling-block puzzle engine with a
headless runner and autoplay bots.

Available commands:
  sim      - Let a bot play and print a summary
  bots     - Show all available bots
  shapes   - Print the shape table

Examples:
  blocchi sim
  blocchi sim --bot random --games 10 --seed 42
  blocchi sim --realtime --fps 30
  blocchi bots
  blocchi shapes`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(botsCmd)
	rootCmd.AddCommand(shapesCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}
