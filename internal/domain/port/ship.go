package port

import "github.com/andrescamacho/harbormaster-go/internal/domain/shared"

// Ship entity - a cargo ship that arrives, waits, docks and is unloaded.
//
// Invariants:
// - ContainersRemaining never exceeds Containers and never drops below zero
// - DockedAt is nil while the ship is waiting
// - AssignedCranes is empty unless the ship is docked
// - A ship with ContainersRemaining == 0 is eligible for automatic undocking
type Ship struct {
	ID                  shared.ShipID
	Containers          int
	ContainersRemaining int
	ArrivalTurn         int
	DockedAt            *shared.BerthID
	AssignedCranes      []shared.CraneID
}

// NewShip creates a ship with a full load waiting outside the port
func NewShip(id shared.ShipID, containers, arrivalTurn int) *Ship {
	return &Ship{
		ID:                  id,
		Containers:          containers,
		ContainersRemaining: containers,
		ArrivalTurn:         arrivalTurn,
	}
}

func (s *Ship) IsDocked() bool {
	return s.DockedAt != nil
}

func (s *Ship) IsCompleted() bool {
	return s.ContainersRemaining == 0
}

func (s *Ship) Dock(berthID shared.BerthID) {
	b := berthID
	s.DockedAt = &b
}

func (s *Ship) Undock() {
	s.DockedAt = nil
	s.AssignedCranes = nil
}

func (s *Ship) AssignCrane(craneID shared.CraneID) {
	for _, c := range s.AssignedCranes {
		if c == craneID {
			return
		}
	}
	s.AssignedCranes = append(s.AssignedCranes, craneID)
}

func (s *Ship) UnassignCrane(craneID shared.CraneID) {
	kept := s.AssignedCranes[:0]
	for _, c := range s.AssignedCranes {
		if c != craneID {
			kept = append(kept, c)
		}
	}
	s.AssignedCranes = kept
}

// ProcessContainers removes up to count containers and returns the number
// actually removed, clamped so the remaining count never goes negative
func (s *Ship) ProcessContainers(count int) int {
	if count > s.ContainersRemaining {
		count = s.ContainersRemaining
	}
	if count < 0 {
		count = 0
	}
	s.ContainersRemaining -= count
	return count
}

// Clone returns a deep copy with no shared memory
func (s *Ship) Clone() *Ship {
	dup := *s
	if s.DockedAt != nil {
		b := *s.DockedAt
		dup.DockedAt = &b
	}
	if s.AssignedCranes != nil {
		dup.AssignedCranes = append([]shared.CraneID(nil), s.AssignedCranes...)
	}
	return &dup
}
