package game

import "github.com/andrescamacho/harbormaster-go/internal/domain/shared"

// Commands - write operations routed through the mediator. Handlers validate
// against projected state and emit domain events; a failed command emits
// nothing and leaves state unchanged.

// DockShipCommand docks a waiting ship at a free berth
type DockShipCommand struct {
	Party   shared.PartyID
	ShipID  shared.ShipID
	BerthID shared.BerthID
}

type DockShipResponse struct{}

// AssignCraneCommand links a free crane to a docked ship
type AssignCraneCommand struct {
	Party   shared.PartyID
	CraneID shared.CraneID
	ShipID  shared.ShipID
}

type AssignCraneResponse struct{}

// SpawnShipsCommand creates Count new ships per port with randomized loads
type SpawnShipsCommand struct {
	Count int
}

type SpawnShipsResponse struct {
	// Ids of the new arrivals; each id names a pair of mirrored ships, one
	// per port, carrying identical loads
	ShipIDs []shared.ShipID
}

// EndTurnCommand runs the fixed turn-resolution sequence
type EndTurnCommand struct{}

type EndTurnResponse struct {
	Turn     int
	GameOver bool
}

// Queries - pure reads over projected state; they never emit events

type PortStateQuery struct {
	Party shared.PartyID
}

type CurrentTurnQuery struct{}

type GameOverQuery struct{}

type WinnerQuery struct{}

type ActiveEffectsQuery struct{}
