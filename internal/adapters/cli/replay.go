package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
)

// NewReplayCommand creates the replay command
func NewReplayCommand() *cobra.Command {
	var resume bool

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Load an exported match and show its state",
		Long: `Load a replay log exported with 'export' or 'simulate --export' and
show the reconstructed board. With --resume, an unfinished match continues
as an interactive session.

Example:
  harbormaster replay match.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadEnvironment()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read replay: %w", err)
			}

			session, err := game.ImportReplay(cfg, logger, string(data))
			if err != nil {
				return err
			}

			fmt.Printf("Loaded replay from %s\n", args[0])
			if err := renderTurn(session); err != nil {
				return err
			}

			if session.IsGameOver() {
				return renderResult(session)
			}
			if resume {
				return interactiveLoop(session)
			}
			fmt.Println("Match is unfinished; rerun with --resume to continue playing.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&resume, "resume", false, "Continue an unfinished match interactively")

	return cmd
}
