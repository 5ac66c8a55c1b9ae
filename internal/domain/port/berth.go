package port

import "github.com/andrescamacho/harbormaster-go/internal/domain/shared"

// Berth entity - a docking position that holds at most one ship.
// The berth stores a back-reference to its occupant; the ship's DockedAt
// field is the matching forward reference.
type Berth struct {
	ID         shared.BerthID
	OccupiedBy *shared.ShipID
}

func NewBerth(id shared.BerthID) *Berth {
	return &Berth{ID: id}
}

func (b *Berth) IsFree() bool {
	return b.OccupiedBy == nil
}

func (b *Berth) Occupy(shipID shared.ShipID) {
	s := shipID
	b.OccupiedBy = &s
}

func (b *Berth) Free() {
	b.OccupiedBy = nil
}

func (b *Berth) Clone() *Berth {
	dup := *b
	if b.OccupiedBy != nil {
		s := *b.OccupiedBy
		dup.OccupiedBy = &s
	}
	return &dup
}
