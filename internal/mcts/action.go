package mcts

import (
	"fmt"

	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// ActionType enumerates the moves available to the searcher
type ActionType int

const (
	ActionPass ActionType = iota
	ActionDock
	ActionAssign
)

// Action is one move in the simulated game: dock a waiting ship, assign a
// free crane, or pass
type Action struct {
	Type    ActionType
	ShipID  shared.ShipID
	BerthID shared.BerthID
	CraneID shared.CraneID
}

// Pass returns the do-nothing action
func Pass() Action {
	return Action{Type: ActionPass}
}

func Dock(shipID shared.ShipID, berthID shared.BerthID) Action {
	return Action{Type: ActionDock, ShipID: shipID, BerthID: berthID}
}

func Assign(craneID shared.CraneID, shipID shared.ShipID) Action {
	return Action{Type: ActionAssign, CraneID: craneID, ShipID: shipID}
}

func (a Action) String() string {
	switch a.Type {
	case ActionDock:
		return fmt.Sprintf("dock %s at %s", a.ShipID, a.BerthID)
	case ActionAssign:
		return fmt.Sprintf("assign %s to %s", a.CraneID, a.ShipID)
	default:
		return "pass"
	}
}
