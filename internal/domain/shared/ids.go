package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// ShipID identifies a ship within a port
type ShipID int

func (id ShipID) String() string {
	return fmt.Sprintf("Ship#%d", int(id))
}

// BerthID identifies a docking position
type BerthID int

func (id BerthID) String() string {
	return fmt.Sprintf("Berth#%d", int(id))
}

// CraneID identifies an unloading crane
type CraneID int

func (id CraneID) String() string {
	return fmt.Sprintf("Crane#%d", int(id))
}

// PartyID identifies a match participant (human player or AI)
type PartyID struct {
	value uuid.UUID
}

// NewPartyID creates a fresh random party identifier
func NewPartyID() PartyID {
	return PartyID{value: uuid.New()}
}

// ParsePartyID parses a party identifier from its string form
func ParsePartyID(s string) (PartyID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return PartyID{}, fmt.Errorf("invalid party id %q: %w", s, err)
	}
	return PartyID{value: u}, nil
}

func (id PartyID) String() string {
	return id.value.String()
}

func (id PartyID) IsZero() bool {
	return id.value == uuid.Nil
}

func (id PartyID) Equals(other PartyID) bool {
	return id.value == other.value
}

// MarshalText implements encoding.TextMarshaler for JSON map keys and fields
func (id PartyID) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *PartyID) UnmarshalText(data []byte) error {
	u, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	id.value = u
	return nil
}
