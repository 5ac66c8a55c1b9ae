package mcts

import (
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// SimState is the searcher's private snapshot of one port. The search never
// touches real session state: the snapshot is cloned at the root and again
// for every expansion and rollout, so tree nodes share no memory with the
// live aggregate.
type SimState struct {
	Port       *port.Port
	Multiplier float64
	Disabled   map[shared.CraneID]bool
}

// NewSimState snapshots a port under the currently active effects
func NewSimState(p *port.Port, effects []port.ActiveEffect) *SimState {
	disabled := make(map[shared.CraneID]bool)
	for _, e := range effects {
		if e.DisabledCrane != nil {
			disabled[*e.DisabledCrane] = true
		}
	}
	return &SimState{
		Port:       p.Clone(),
		Multiplier: port.CombinedMultiplier(effects),
		Disabled:   disabled,
	}
}

// Clone returns an independent copy
func (s *SimState) Clone() *SimState {
	disabled := make(map[shared.CraneID]bool, len(s.Disabled))
	for id, v := range s.Disabled {
		disabled[id] = v
	}
	return &SimState{Port: s.Port.Clone(), Multiplier: s.Multiplier, Disabled: disabled}
}

// LegalActions enumerates moves in a deterministic order: every waiting
// ship x free berth pairing, then every usable free crane x docked ship
// pairing, then Pass
func (s *SimState) LegalActions() []Action {
	var actions []Action

	for _, ship := range s.Port.WaitingShips() {
		for _, berth := range s.Port.FreeBerths() {
			actions = append(actions, Dock(ship.ID, berth.ID))
		}
	}

	for _, crane := range s.Port.FreeCranes() {
		if s.Disabled[crane.ID] {
			continue
		}
		for _, ship := range s.Port.DockedShips() {
			actions = append(actions, Assign(crane.ID, ship.ID))
		}
	}

	actions = append(actions, Pass())
	return actions
}

// Terminal reports whether every ship has been processed
func (s *SimState) Terminal() bool {
	return len(s.Port.Ships) == 0
}

// Stalled reports whether no action can make further progress: nothing to
// dock or assign, and no docked ship is being unloaded
func (s *SimState) Stalled() bool {
	if len(s.Port.WaitingShips()) > 0 && len(s.Port.FreeBerths()) > 0 {
		return false
	}
	if len(s.Port.FreeCranes()) > 0 && len(s.Port.DockedShips()) > 0 {
		return false
	}
	for _, ship := range s.Port.DockedShips() {
		if len(ship.AssignedCranes) > 0 {
			return false
		}
	}
	return true
}

// Apply plays one action and advances the simulation by one step: docked
// ships with cranes are unloaded under the snapshot multiplier, completed
// ships are released, and the waiting-ship penalty is charged. Scoring
// mirrors the real turn rules (+10 per container, -5 per waiting ship).
func (s *SimState) Apply(a Action) {
	switch a.Type {
	case ActionDock:
		if ship, ok := s.Port.Ships[a.ShipID]; ok && !ship.IsDocked() {
			if berth, ok := s.Port.Berths[a.BerthID]; ok && berth.IsFree() {
				ship.Dock(a.BerthID)
				berth.Occupy(a.ShipID)
			}
		}
	case ActionAssign:
		if crane, ok := s.Port.Cranes[a.CraneID]; ok && crane.IsFree() && !s.Disabled[a.CraneID] {
			if ship, ok := s.Port.Ships[a.ShipID]; ok && ship.IsDocked() {
				crane.Assign(a.ShipID)
				ship.AssignCrane(a.CraneID)
			}
		}
	case ActionPass:
	}

	s.step()
}

// step runs the per-turn consequences inside the simulation
func (s *SimState) step() {
	for _, ship := range s.Port.DockedShips() {
		if len(ship.AssignedCranes) == 0 {
			continue
		}

		total := 0
		for _, craneID := range ship.AssignedCranes {
			if s.Disabled[craneID] {
				continue
			}
			if crane, ok := s.Port.Cranes[craneID]; ok {
				total += int(float64(crane.ContainersPerTurn()) * s.Multiplier)
			}
		}

		processed := ship.ProcessContainers(total)
		s.Port.Score += processed * 10

		if ship.IsCompleted() {
			for _, craneID := range ship.AssignedCranes {
				if crane, ok := s.Port.Cranes[craneID]; ok {
					crane.Unassign()
				}
			}
			if ship.DockedAt != nil {
				if berth, ok := s.Port.Berths[*ship.DockedAt]; ok {
					berth.Free()
				}
			}
			delete(s.Port.Ships, ship.ID)
		}
	}

	s.Port.Score -= 5 * len(s.Port.WaitingShips())
}
