package game

import (
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// Read models returned by queries. Views are value snapshots detached from
// the aggregate, safe for callers to hold across turns.

type ShipView struct {
	ID                  shared.ShipID
	Containers          int
	ContainersRemaining int
	ArrivalTurn         int
	DockedAt            *shared.BerthID
	AssignedCranes      []shared.CraneID
}

type BerthView struct {
	ID         shared.BerthID
	OccupiedBy *shared.ShipID
}

type CraneView struct {
	ID                shared.CraneID
	AssignedTo        *shared.ShipID
	ContainersPerTurn int
	Disabled          bool
}

type EffectView struct {
	Description    string
	Multiplier     float64
	TurnsRemaining int
}

type PortView struct {
	Party  shared.PartyID
	Ships  []ShipView
	Berths []BerthView
	Cranes []CraneView
	Score  int
	Turn   int
}

// RandomEventNotice is a turn disruption surfaced to the host for display
type RandomEventNotice struct {
	Kind        port.RandomEventKind
	Description string
	Turn        int
}

// NewPortView snapshots a port under the given active effects
func NewPortView(p *port.Port, effects []port.ActiveEffect) PortView {
	view := PortView{
		Party: p.Party,
		Score: p.Score,
		Turn:  p.Turn,
	}

	for _, s := range p.AllShips() {
		sv := ShipView{
			ID:                  s.ID,
			Containers:          s.Containers,
			ContainersRemaining: s.ContainersRemaining,
			ArrivalTurn:         s.ArrivalTurn,
		}
		if s.DockedAt != nil {
			b := *s.DockedAt
			sv.DockedAt = &b
		}
		sv.AssignedCranes = append(sv.AssignedCranes, s.AssignedCranes...)
		view.Ships = append(view.Ships, sv)
	}

	for _, b := range p.AllBerths() {
		bv := BerthView{ID: b.ID}
		if b.OccupiedBy != nil {
			s := *b.OccupiedBy
			bv.OccupiedBy = &s
		}
		view.Berths = append(view.Berths, bv)
	}

	for _, c := range p.AllCranes() {
		cv := CraneView{
			ID:                c.ID,
			ContainersPerTurn: c.ContainersPerTurn(),
			Disabled:          port.CraneDisabled(effects, c.ID),
		}
		if c.AssignedTo != nil {
			s := *c.AssignedTo
			cv.AssignedTo = &s
		}
		view.Cranes = append(view.Cranes, cv)
	}

	return view
}

// NewEffectViews snapshots the active effects
func NewEffectViews(effects []port.ActiveEffect) []EffectView {
	views := make([]EffectView, 0, len(effects))
	for _, e := range effects {
		views = append(views, EffectView{
			Description:    e.Description,
			Multiplier:     e.Multiplier,
			TurnsRemaining: e.TurnsRemaining,
		})
	}
	return views
}
