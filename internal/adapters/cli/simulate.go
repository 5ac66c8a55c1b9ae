package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var exportPath string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a full match with an autopilot playing the player's side",
		Long: `Run a complete match without interaction. A greedy autopilot plays
the player's side (dock the first waiting ship, assign every free crane),
which makes for a useful baseline against the tree-search opponent.

Example:
  harbormaster simulate --seed 42 --export match.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadEnvironment()
			if err != nil {
				return err
			}

			session, err := game.NewSession(cfg, logger, resolveSeed())
			if err != nil {
				return err
			}

			ctx := context.Background()
			for !session.IsGameOver() {
				if err := autopilot(ctx, session); err != nil {
					return err
				}
				if _, err := session.Submit(ctx, game.EndTurnCommand{}); err != nil {
					return err
				}
				if !quiet {
					renderNotices(session)
					if err := renderTurn(session); err != nil {
						return err
					}
				}
			}

			if err := renderResult(session); err != nil {
				return err
			}
			if exportPath != "" {
				return exportReplay(session, exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Write the replay log to a file when done")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final result")

	return cmd
}

// autopilot plays a greedy player turn: fill free berths with the lowest
// numbered waiting ships, then put every usable free crane on the lowest
// numbered docked ship
func autopilot(ctx context.Context, session *game.Session) error {
	view, err := session.PlayerPort()
	if err != nil {
		return err
	}

	free := make([]shared.BerthID, 0, len(view.Berths))
	for _, b := range view.Berths {
		if b.OccupiedBy == nil {
			free = append(free, b.ID)
		}
	}
	for _, ship := range view.Ships {
		if ship.DockedAt != nil || len(free) == 0 {
			continue
		}
		_, err := session.Submit(ctx, game.DockShipCommand{
			Party:   session.PlayerID(),
			ShipID:  ship.ID,
			BerthID: free[0],
		})
		if err != nil {
			return err
		}
		free = free[1:]
	}

	view, err = session.PlayerPort()
	if err != nil {
		return err
	}
	for _, crane := range view.Cranes {
		if crane.AssignedTo != nil || crane.Disabled {
			continue
		}
		for _, ship := range view.Ships {
			if ship.DockedAt == nil {
				continue
			}
			_, err := session.Submit(ctx, game.AssignCraneCommand{
				Party:   session.PlayerID(),
				CraneID: crane.ID,
				ShipID:  ship.ID,
			})
			if err != nil {
				return err
			}
			break
		}
	}
	return nil
}
