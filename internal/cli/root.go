// Package cli implements the command-line interface for rubiks.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks_cube/internal/config"
	"github.com/SeamusWaldron/rubiks_cube/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	statePath string
	logLevel  string
	seed      uint64

	cfg config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubiks",
	Short: "Rubik's cube simulator",
	Long: `rubiks - A command-line Rubik's cube you can rotate, invert, shift,
shuffle and unshuffle.

Run 'rubiks play' for the interactive menu, or drive the cube one command at
a time with a recorded session ('rubiks session start').`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubiks_cube/rubiks.db)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "State file path (default: ~/.rubiks_cube/state.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for shuffles (0 seeds from the clock)")
}

// setup loads the environment, applies flag overrides and installs the
// logger on the command context.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		loaded.DBPath = dbPath
	}
	if flags.Changed("state") {
		loaded.StatePath = statePath
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("seed") {
		loaded.Seed = seed
	}
	cfg = loaded

	logger := logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	logger.Debug("config loaded", "db", cfg.DBPath, "state", cfg.StatePath)

	return nil
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	return logging.FromContext(cmd.Context())
}
