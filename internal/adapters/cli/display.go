package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
)

// renderPort prints one side's terminal state
func renderPort(title string, view game.PortView) {
	fmt.Printf("%s (score %d)\n", title, view.Score)

	if len(view.Ships) == 0 {
		fmt.Println("  No ships in port")
	}
	for _, ship := range view.Ships {
		status := "waiting"
		if ship.DockedAt != nil {
			status = fmt.Sprintf("docked at %s", *ship.DockedAt)
			if len(ship.AssignedCranes) > 0 {
				names := make([]string, 0, len(ship.AssignedCranes))
				for _, c := range ship.AssignedCranes {
					names = append(names, c.String())
				}
				status += ", " + strings.Join(names, "+")
			}
		}
		fmt.Printf("  %-8s %3d/%3d containers  [%s]\n",
			ship.ID, ship.ContainersRemaining, ship.Containers, status)
	}

	berths := make([]string, 0, len(view.Berths))
	for _, b := range view.Berths {
		if b.OccupiedBy != nil {
			berths = append(berths, fmt.Sprintf("%s:%s", b.ID, *b.OccupiedBy))
		} else {
			berths = append(berths, fmt.Sprintf("%s:free", b.ID))
		}
	}
	fmt.Printf("  Berths: %s\n", strings.Join(berths, "  "))

	cranes := make([]string, 0, len(view.Cranes))
	for _, c := range view.Cranes {
		switch {
		case c.Disabled:
			cranes = append(cranes, fmt.Sprintf("%s:down", c.ID))
		case c.AssignedTo != nil:
			cranes = append(cranes, fmt.Sprintf("%s:%s", c.ID, *c.AssignedTo))
		default:
			cranes = append(cranes, fmt.Sprintf("%s:free", c.ID))
		}
	}
	fmt.Printf("  Cranes: %s\n", strings.Join(cranes, "  "))
}

// renderTurn prints the full board between turns
func renderTurn(session *game.Session) error {
	player, err := session.PlayerPort()
	if err != nil {
		return err
	}
	ai, err := session.AIPort()
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Turn %d ===\n", session.CurrentTurn())
	renderPort("Your port", player)
	renderPort("Opponent port", ai)

	if effects := session.ActiveEffects(); len(effects) > 0 {
		fmt.Println("Active effects:")
		for _, e := range effects {
			fmt.Printf("  %s (%d turn(s) left)\n", e.Description, e.TurnsRemaining)
		}
	}
	return nil
}

// renderNotices prints disruptions fired since the last drain
func renderNotices(session *game.Session) {
	for _, notice := range session.DrainRandomEvents() {
		fmt.Printf("!! %s\n", notice.Description)
	}
}

// renderResult prints the final score comparison
func renderResult(session *game.Session) error {
	player, err := session.PlayerPort()
	if err != nil {
		return err
	}
	ai, err := session.AIPort()
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Game over at turn %d ===\n", session.CurrentTurn())
	fmt.Printf("Your score:     %d\n", player.Score)
	fmt.Printf("Opponent score: %d\n", ai.Score)
	fmt.Printf("Result:         %s\n", session.Winner())
	return nil
}
