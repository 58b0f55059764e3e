// catchzone is a three-lane catching game driven by lane commands.
//
// Usage:
//
//	catchzone play     - Play in the terminal with the keyboard
//	catchzone feed     - Drive a session from classifier output on stdin
//	catchzone rules    - Show the rules sheet
//	catchzone config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default: search ~/.catchzone, ./configs)
//	--fps <rate>        - Frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible sessions
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-zone/internal/config"
	"github.com/vovakirdan/catch-zone/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catchzone",
	Short: "Catch Zone - catch the fruit, dodge the bomb",
	Long: `Catch Zone is a three-lane catching game. Fruit and bombs fall toward
a catcher that moves between lanes on named commands (left, center, right),
from the keyboard or from a pose classifier.

Available commands:
  play     - Play in the terminal
  feed     - Drive a session from classifier labels on stdin
  rules    - Show the rules sheet
  config   - Print the effective configuration

Examples:
  catchzone play
  catchzone play --seed 42 --log-file catchzone.log
  classifier | catchzone feed
  catchzone rules --plain
  catchzone config > ~/.catchzone/catchzone.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the effective configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates the CLI logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "catchzone",
		Level:           level,
	}), nil
}

// runtimeConfig builds the engine runtime settings from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
