package port

import "github.com/andrescamacho/harbormaster-go/internal/domain/shared"

// BaseContainersPerTurn is the number of containers a crane with processing
// speed 1.0 unloads in one turn before active-effect multipliers.
const BaseContainersPerTurn = 10

// Crane entity - unloading equipment assignable to a docked ship.
//
// Invariants:
// - AssignedTo is nil while the crane is free
// - A busy crane's assigned ship must be docked
type Crane struct {
	ID              shared.CraneID
	AssignedTo      *shared.ShipID
	ProcessingSpeed float64
}

func NewCrane(id shared.CraneID, processingSpeed float64) *Crane {
	return &Crane{ID: id, ProcessingSpeed: processingSpeed}
}

func (c *Crane) IsFree() bool {
	return c.AssignedTo == nil
}

func (c *Crane) Assign(shipID shared.ShipID) {
	s := shipID
	c.AssignedTo = &s
}

func (c *Crane) Unassign() {
	c.AssignedTo = nil
}

// ContainersPerTurn returns the unmodified per-turn throughput of this crane
func (c *Crane) ContainersPerTurn() int {
	return int(c.ProcessingSpeed * BaseContainersPerTurn)
}

func (c *Crane) Clone() *Crane {
	dup := *c
	if c.AssignedTo != nil {
		s := *c.AssignedTo
		dup.AssignedTo = &s
	}
	return &dup
}
