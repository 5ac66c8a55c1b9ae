package game

import (
	"fmt"

	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/eventstore"
)

// Project folds an ordered event sequence into session state. The fold is
// pure, deterministic and idempotent: projecting the same prefix twice
// yields identical state. Every event is checked against the domain
// invariants before it is applied, so an imported log that would put the
// session into an illegal state is rejected instead of silently applied.
func Project(records []eventstore.Record) (*State, error) {
	st := NewState()
	for i, r := range records {
		if err := checkInvariants(st, r.Event); err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i, r.Event.EventType(), err)
		}
		st.Apply(r.Event)
	}
	return st, nil
}

// checkInvariants verifies that an event is legal against the current state
func checkInvariants(st *State, ev port.Event) error {
	if _, ok := ev.(port.GameStarted); ok {
		if st.Started() {
			return fmt.Errorf("duplicate GameStarted")
		}
		return nil
	}
	if !st.Started() {
		return fmt.Errorf("log does not begin with GameStarted")
	}
	if st.Over {
		return fmt.Errorf("event after GameEnded")
	}

	switch e := ev.(type) {
	case port.ShipArrived:
		p, ok := st.PortFor(e.Party)
		if !ok {
			return fmt.Errorf("unknown party %s", e.Party)
		}
		if _, exists := p.Ships[e.ShipID]; exists {
			return fmt.Errorf("%s already exists", e.ShipID)
		}
		if e.Containers <= 0 {
			return fmt.Errorf("%s has non-positive load %d", e.ShipID, e.Containers)
		}

	case port.ShipDocked:
		p, ok := st.PortFor(e.Party)
		if !ok {
			return fmt.Errorf("unknown party %s", e.Party)
		}
		ship, ok := p.Ships[e.ShipID]
		if !ok {
			return fmt.Errorf("%s does not exist", e.ShipID)
		}
		if ship.IsDocked() {
			return fmt.Errorf("%s is already docked", e.ShipID)
		}
		berth, ok := p.Berths[e.BerthID]
		if !ok {
			return fmt.Errorf("%s does not exist", e.BerthID)
		}
		if !berth.IsFree() {
			return fmt.Errorf("%s is occupied", e.BerthID)
		}

	case port.CraneAssigned:
		p, ok := st.PortFor(e.Party)
		if !ok {
			return fmt.Errorf("unknown party %s", e.Party)
		}
		crane, ok := p.Cranes[e.CraneID]
		if !ok {
			return fmt.Errorf("%s does not exist", e.CraneID)
		}
		if !crane.IsFree() {
			return fmt.Errorf("%s is busy", e.CraneID)
		}
		ship, ok := p.Ships[e.ShipID]
		if !ok {
			return fmt.Errorf("%s does not exist", e.ShipID)
		}
		if !ship.IsDocked() {
			return fmt.Errorf("%s is not docked", e.ShipID)
		}

	case port.ContainersProcessed:
		p, ok := st.PortFor(e.Party)
		if !ok {
			return fmt.Errorf("unknown party %s", e.Party)
		}
		ship, ok := p.Ships[e.ShipID]
		if !ok {
			return fmt.Errorf("%s does not exist", e.ShipID)
		}
		if e.Processed <= 0 || e.Remaining < 0 {
			return fmt.Errorf("invalid processing amounts for %s", e.ShipID)
		}
		if ship.ContainersRemaining != e.Processed+e.Remaining {
			return fmt.Errorf("%s processing does not reconcile: %d remaining, claims %d+%d",
				e.ShipID, ship.ContainersRemaining, e.Processed, e.Remaining)
		}

	case port.ShipUndocked:
		p, ok := st.PortFor(e.Party)
		if !ok {
			return fmt.Errorf("unknown party %s", e.Party)
		}
		ship, ok := p.Ships[e.ShipID]
		if !ok {
			return fmt.Errorf("%s does not exist", e.ShipID)
		}
		if ship.DockedAt == nil || *ship.DockedAt != e.BerthID {
			return fmt.Errorf("%s is not docked at %s", e.ShipID, e.BerthID)
		}
		if ship.ContainersRemaining != 0 {
			return fmt.Errorf("%s undocked with %d containers remaining", e.ShipID, ship.ContainersRemaining)
		}

	case port.RandomEventTriggered:
		if e.Multiplier < 0 || e.Duration < 0 || e.ExtraShips < 0 {
			return fmt.Errorf("invalid random event parameters")
		}

	case port.EffectExpired:
		for i := range st.Effects {
			if st.Effects[i].Description == e.Description && st.Effects[i].Expiring() {
				return nil
			}
		}
		return fmt.Errorf("no expiring effect %q", e.Description)

	case port.TurnEnded:
		if e.Turn != st.Turn+1 {
			return fmt.Errorf("turn counter jumped from %d to %d", st.Turn, e.Turn)
		}
		if e.PlayerWaiting < 0 || e.AIWaiting < 0 {
			return fmt.Errorf("negative waiting counts")
		}

	case port.GameEnded:
		if e.Turn != st.Turn {
			return fmt.Errorf("game ended at turn %d but counter is %d", e.Turn, st.Turn)
		}
	}

	return nil
}
