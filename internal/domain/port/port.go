package port

import (
	"sort"

	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// Port aggregate - one party's terminal. Owns its ships, berths and cranes;
// no entity is shared across ports. All mutation goes through Apply so that
// live play and replay fold events identically.
type Port struct {
	Party  shared.PartyID
	Ships  map[shared.ShipID]*Ship
	Berths map[shared.BerthID]*Berth
	Cranes map[shared.CraneID]*Crane
	Score  int
	Turn   int
}

// NewPort creates an empty port with numBerths berths and numCranes cranes,
// all cranes at the given processing speed
func NewPort(party shared.PartyID, numBerths, numCranes int, craneSpeed float64) *Port {
	p := &Port{
		Party:  party,
		Ships:  make(map[shared.ShipID]*Ship),
		Berths: make(map[shared.BerthID]*Berth),
		Cranes: make(map[shared.CraneID]*Crane),
	}
	for i := 0; i < numBerths; i++ {
		id := shared.BerthID(i)
		p.Berths[id] = NewBerth(id)
	}
	for i := 0; i < numCranes; i++ {
		id := shared.CraneID(i)
		p.Cranes[id] = NewCrane(id, craneSpeed)
	}
	return p
}

// Apply folds one party-scoped event into the port state. Events addressed
// to another party are ignored. Session-level events (GameStarted, TurnEnded,
// RandomEventTriggered, EffectExpired, GameEnded) are folded by the caller.
func (p *Port) Apply(ev Event) {
	switch e := ev.(type) {
	case ShipArrived:
		if !e.Party.Equals(p.Party) {
			return
		}
		p.Ships[e.ShipID] = NewShip(e.ShipID, e.Containers, e.Turn)

	case ShipDocked:
		if !e.Party.Equals(p.Party) {
			return
		}
		if ship, ok := p.Ships[e.ShipID]; ok {
			ship.Dock(e.BerthID)
		}
		if berth, ok := p.Berths[e.BerthID]; ok {
			berth.Occupy(e.ShipID)
		}

	case CraneAssigned:
		if !e.Party.Equals(p.Party) {
			return
		}
		if crane, ok := p.Cranes[e.CraneID]; ok {
			crane.Assign(e.ShipID)
		}
		if ship, ok := p.Ships[e.ShipID]; ok {
			ship.AssignCrane(e.CraneID)
		}

	case ContainersProcessed:
		if !e.Party.Equals(p.Party) {
			return
		}
		if ship, ok := p.Ships[e.ShipID]; ok {
			ship.ContainersRemaining = e.Remaining
			p.Score += e.Processed * 10
		}

	case ShipUndocked:
		if !e.Party.Equals(p.Party) {
			return
		}
		if ship, ok := p.Ships[e.ShipID]; ok {
			for _, craneID := range ship.AssignedCranes {
				if crane, ok := p.Cranes[craneID]; ok {
					crane.Unassign()
				}
			}
			ship.Undock()
		}
		if berth, ok := p.Berths[e.BerthID]; ok {
			berth.Free()
		}
		// Fully unloaded ships leave active simulation state; they remain
		// reachable through the event log.
		delete(p.Ships, e.ShipID)
	}
}

// WaitingShips returns undocked ships ordered by id
func (p *Port) WaitingShips() []*Ship {
	var ships []*Ship
	for _, s := range p.Ships {
		if !s.IsDocked() {
			ships = append(ships, s)
		}
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].ID < ships[j].ID })
	return ships
}

// DockedShips returns docked ships ordered by id
func (p *Port) DockedShips() []*Ship {
	var ships []*Ship
	for _, s := range p.Ships {
		if s.IsDocked() {
			ships = append(ships, s)
		}
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].ID < ships[j].ID })
	return ships
}

// FreeBerths returns unoccupied berths ordered by id
func (p *Port) FreeBerths() []*Berth {
	var berths []*Berth
	for _, b := range p.Berths {
		if b.IsFree() {
			berths = append(berths, b)
		}
	}
	sort.Slice(berths, func(i, j int) bool { return berths[i].ID < berths[j].ID })
	return berths
}

// FreeCranes returns unassigned cranes ordered by id
func (p *Port) FreeCranes() []*Crane {
	var cranes []*Crane
	for _, c := range p.Cranes {
		if c.IsFree() {
			cranes = append(cranes, c)
		}
	}
	sort.Slice(cranes, func(i, j int) bool { return cranes[i].ID < cranes[j].ID })
	return cranes
}

// AllShips returns every active ship ordered by id
func (p *Port) AllShips() []*Ship {
	ships := make([]*Ship, 0, len(p.Ships))
	for _, s := range p.Ships {
		ships = append(ships, s)
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].ID < ships[j].ID })
	return ships
}

// AllBerths returns every berth ordered by id
func (p *Port) AllBerths() []*Berth {
	berths := make([]*Berth, 0, len(p.Berths))
	for _, b := range p.Berths {
		berths = append(berths, b)
	}
	sort.Slice(berths, func(i, j int) bool { return berths[i].ID < berths[j].ID })
	return berths
}

// AllCranes returns every crane ordered by id
func (p *Port) AllCranes() []*Crane {
	cranes := make([]*Crane, 0, len(p.Cranes))
	for _, c := range p.Cranes {
		cranes = append(cranes, c)
	}
	sort.Slice(cranes, func(i, j int) bool { return cranes[i].ID < cranes[j].ID })
	return cranes
}

// Clone returns a deep copy with no shared memory, cheap enough for
// per-rollout cloning in tree search
func (p *Port) Clone() *Port {
	dup := &Port{
		Party:  p.Party,
		Ships:  make(map[shared.ShipID]*Ship, len(p.Ships)),
		Berths: make(map[shared.BerthID]*Berth, len(p.Berths)),
		Cranes: make(map[shared.CraneID]*Crane, len(p.Cranes)),
		Score:  p.Score,
		Turn:   p.Turn,
	}
	for id, s := range p.Ships {
		dup.Ships[id] = s.Clone()
	}
	for id, b := range p.Berths {
		dup.Berths[id] = b.Clone()
	}
	for id, c := range p.Cranes {
		dup.Cranes[id] = c.Clone()
	}
	return dup
}
