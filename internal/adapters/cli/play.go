package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// NewPlayCommand creates the interactive play command
func NewPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive match against the AI opponent",
		Long: `Play an interactive match. Type commands at the prompt:

  dock <ship> <berth>     dock a waiting ship at a free berth
  assign <crane> <ship>   assign a free crane to a docked ship
  spawn <count>           request extra ship arrivals
  end                     end your turn
  status                  show both ports
  export <file>           write the replay log to a file
  quit                    abandon the match

Ships, berths and cranes are referred to by number, e.g. "dock 0 1".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadEnvironment()
			if err != nil {
				return err
			}

			session, err := game.NewSession(cfg, logger, resolveSeed())
			if err != nil {
				return err
			}

			fmt.Println("Harbormaster - unload more containers than the opponent.")
			fmt.Printf("The match runs for %d turns. Type 'help' for commands.\n", cfg.Game.MaxTurns)
			if err := renderTurn(session); err != nil {
				return err
			}

			return interactiveLoop(session)
		},
	}
}

// interactiveLoop reads player commands from stdin until the match ends or
// the player quits
func interactiveLoop(session *game.Session) error {
	scanner := bufio.NewScanner(os.Stdin)
	for !session.IsGameOver() {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		quit, err := dispatch(session, strings.Fields(scanner.Text()))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if quit {
			fmt.Println("Match abandoned.")
			return nil
		}
	}

	return renderResult(session)
}

// dispatch executes one line of player input; it returns true on quit
func dispatch(session *game.Session, fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}
	ctx := context.Background()

	switch fields[0] {
	case "dock":
		ship, berth, err := parseTwoIDs(fields[1:], "dock <ship> <berth>")
		if err != nil {
			return false, err
		}
		_, err = session.Submit(ctx, game.DockShipCommand{
			Party:   session.PlayerID(),
			ShipID:  shared.ShipID(ship),
			BerthID: shared.BerthID(berth),
		})
		return false, err

	case "assign":
		crane, ship, err := parseTwoIDs(fields[1:], "assign <crane> <ship>")
		if err != nil {
			return false, err
		}
		_, err = session.Submit(ctx, game.AssignCraneCommand{
			Party:   session.PlayerID(),
			CraneID: shared.CraneID(crane),
			ShipID:  shared.ShipID(ship),
		})
		return false, err

	case "spawn":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: spawn <count>")
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("usage: spawn <count>")
		}
		_, err = session.Submit(ctx, game.SpawnShipsCommand{Count: count})
		return false, err

	case "end":
		if _, err := session.Submit(ctx, game.EndTurnCommand{}); err != nil {
			return false, err
		}
		renderNotices(session)
		if session.IsGameOver() {
			return false, nil
		}
		return false, renderTurn(session)

	case "status":
		return false, renderTurn(session)

	case "export":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: export <file>")
		}
		return false, exportReplay(session, fields[1])

	case "help":
		fmt.Println("Commands: dock <ship> <berth> | assign <crane> <ship> | spawn <count> | end | status | export <file> | quit")
		return false, nil

	case "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
}

func parseTwoIDs(args []string, usage string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("usage: %s", usage)
	}
	first, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("usage: %s", usage)
	}
	second, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("usage: %s", usage)
	}
	return first, second, nil
}

// exportReplay writes the serialized event log to a file
func exportReplay(session *game.Session, path string) error {
	text, err := session.ExportReplay()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write replay: %w", err)
	}
	fmt.Printf("Replay written to %s\n", path)
	return nil
}
