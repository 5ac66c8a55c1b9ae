package port

import "github.com/andrescamacho/harbormaster-go/internal/domain/shared"

// EventType tags the closed set of domain events
type EventType string

const (
	EventGameStarted          EventType = "GameStarted"
	EventShipArrived          EventType = "ShipArrived"
	EventShipDocked           EventType = "ShipDocked"
	EventCraneAssigned        EventType = "CraneAssigned"
	EventContainersProcessed  EventType = "ContainersProcessed"
	EventShipUndocked         EventType = "ShipUndocked"
	EventRandomEventTriggered EventType = "RandomEventTriggered"
	EventEffectExpired        EventType = "EffectExpired"
	EventTurnEnded            EventType = "TurnEnded"
	EventGameEnded            EventType = "GameEnded"
)

// Winner is the declared result of a finished match
type Winner string

const (
	WinnerNone   Winner = "none"
	WinnerPlayer Winner = "player"
	WinnerAI     Winner = "ai"
	WinnerTie    Winner = "tie"
)

// Event is a domain event. The concrete types below form a closed set;
// state is reconstructed by an exhaustive fold over the ordered log.
// Events are immutable once appended.
type Event interface {
	EventType() EventType
}

// GameStarted opens the log. It carries everything a fresh projector needs
// to rebuild the session: party identities, port dimensions and the RNG seed.
type GameStarted struct {
	SessionID string         `json:"session_id"`
	PlayerID  shared.PartyID `json:"player_id"`
	AIID      shared.PartyID `json:"ai_id"`
	Berths    int            `json:"berths"`
	Cranes    int            `json:"cranes"`
	Speed     float64        `json:"crane_speed"`
	Seed      uint64         `json:"seed"`
}

func (GameStarted) EventType() EventType { return EventGameStarted }

// ShipArrived records a new ship entering a party's waiting queue
type ShipArrived struct {
	Party      shared.PartyID `json:"party"`
	ShipID     shared.ShipID  `json:"ship_id"`
	Containers int            `json:"containers"`
	Turn       int            `json:"turn"`
}

func (ShipArrived) EventType() EventType { return EventShipArrived }

// ShipDocked records a waiting ship taking a free berth
type ShipDocked struct {
	Party   shared.PartyID `json:"party"`
	ShipID  shared.ShipID  `json:"ship_id"`
	BerthID shared.BerthID `json:"berth_id"`
	Turn    int            `json:"turn"`
}

func (ShipDocked) EventType() EventType { return EventShipDocked }

// CraneAssigned records a free crane linking to a docked ship
type CraneAssigned struct {
	Party   shared.PartyID `json:"party"`
	CraneID shared.CraneID `json:"crane_id"`
	ShipID  shared.ShipID  `json:"ship_id"`
	Turn    int            `json:"turn"`
}

func (CraneAssigned) EventType() EventType { return EventCraneAssigned }

// ContainersProcessed records containers unloaded from a docked ship.
// The fold credits 10 score points per processed container.
type ContainersProcessed struct {
	Party     shared.PartyID `json:"party"`
	ShipID    shared.ShipID  `json:"ship_id"`
	Processed int            `json:"processed"`
	Remaining int            `json:"remaining"`
	Turn      int            `json:"turn"`
}

func (ContainersProcessed) EventType() EventType { return EventContainersProcessed }

// ShipUndocked records a fully unloaded ship leaving its berth, freeing the
// berth and every crane assigned to the ship
type ShipUndocked struct {
	Party    shared.PartyID `json:"party"`
	ShipID   shared.ShipID  `json:"ship_id"`
	BerthID  shared.BerthID `json:"berth_id"`
	Unloaded int            `json:"unloaded"`
	Turn     int            `json:"turn"`
}

func (ShipUndocked) EventType() EventType { return EventShipUndocked }

// RandomEventTriggered records a catalogue event together with the concrete
// parameters that were rolled, so replay never re-derives randomness
type RandomEventTriggered struct {
	Kind        RandomEventKind `json:"kind"`
	Description string          `json:"description"`
	Multiplier  float64         `json:"multiplier"`
	Duration    int             `json:"duration"`
	CraneID     *shared.CraneID `json:"crane_id,omitempty"`
	ExtraShips  int             `json:"extra_ships,omitempty"`
	Turn        int             `json:"turn"`
}

func (RandomEventTriggered) EventType() EventType { return EventRandomEventTriggered }

// EffectExpired records an active effect reaching zero remaining turns
type EffectExpired struct {
	Description string `json:"description"`
	Turn        int    `json:"turn"`
}

func (EffectExpired) EventType() EventType { return EventEffectExpired }

// TurnEnded closes a turn. The fold applies the waiting-ship penalty
// (5 points per waiting ship, per party) and decrements active effects
// created on earlier turns.
type TurnEnded struct {
	Turn          int `json:"turn"`
	PlayerWaiting int `json:"player_waiting"`
	AIWaiting     int `json:"ai_waiting"`
}

func (TurnEnded) EventType() EventType { return EventTurnEnded }

// GameEnded terminates the log with the final score comparison
type GameEnded struct {
	Turn        int    `json:"turn"`
	PlayerScore int    `json:"player_score"`
	AIScore     int    `json:"ai_score"`
	Winner      Winner `json:"winner"`
}

func (GameEnded) EventType() EventType { return EventGameEnded }
