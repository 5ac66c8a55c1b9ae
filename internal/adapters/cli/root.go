// Package cli is the terminal host for the port simulation. It owns
// presentation and input parsing only; all game rules live behind the
// session API.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/config"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/logging"
	"github.com/rs/zerolog"
)

var (
	// Global flags
	configPath string
	seed       uint64
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "harbormaster",
		Short: "Harbormaster - a port terminal duel against a tree-search opponent",
		Long: `Harbormaster runs a turn-based port terminal match between you and an
AI opponent. Dock arriving ships, assign cranes, and unload more containers
than the opponent before the clock runs out.

Examples:
  harbormaster play
  harbormaster play --seed 42
  harbormaster simulate --seed 42 --export match.json
  harbormaster replay match.json`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewReplayCommand())

	return rootCmd
}

// loadEnvironment resolves configuration and logging from the global flags
func loadEnvironment() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, logging.NewLogger(cfg.Logging), nil
}

// resolveSeed returns the --seed flag, or a time-based seed when unset
func resolveSeed() uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
