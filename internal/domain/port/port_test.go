package port_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

func newTestPort(t *testing.T) (*port.Port, shared.PartyID) {
	t.Helper()
	party := shared.NewPartyID()
	return port.NewPort(party, 2, 2, 1.0), party
}

func TestPort_FoldsArrivalDockingAndAssignment(t *testing.T) {
	p, party := newTestPort(t)

	p.Apply(port.ShipArrived{Party: party, ShipID: 0, Containers: 30, Turn: 1})
	p.Apply(port.ShipDocked{Party: party, ShipID: 0, BerthID: 1, Turn: 1})
	p.Apply(port.CraneAssigned{Party: party, CraneID: 0, ShipID: 0, Turn: 1})

	ship, ok := p.Ships[0]
	require.True(t, ok)
	assert.Equal(t, shared.BerthID(1), *ship.DockedAt)
	assert.Equal(t, []shared.CraneID{0}, ship.AssignedCranes)
	assert.Equal(t, shared.ShipID(0), *p.Berths[1].OccupiedBy)
	assert.Equal(t, shared.ShipID(0), *p.Cranes[0].AssignedTo)
}

func TestPort_ProcessingCreditsScore(t *testing.T) {
	p, party := newTestPort(t)
	p.Apply(port.ShipArrived{Party: party, ShipID: 0, Containers: 30, Turn: 1})

	p.Apply(port.ContainersProcessed{Party: party, ShipID: 0, Processed: 10, Remaining: 20, Turn: 1})

	assert.Equal(t, 20, p.Ships[0].ContainersRemaining)
	assert.Equal(t, 100, p.Score)
}

func TestPort_UndockFreesBerthAndCranes(t *testing.T) {
	p, party := newTestPort(t)
	p.Apply(port.ShipArrived{Party: party, ShipID: 0, Containers: 10, Turn: 1})
	p.Apply(port.ShipDocked{Party: party, ShipID: 0, BerthID: 0, Turn: 1})
	p.Apply(port.CraneAssigned{Party: party, CraneID: 0, ShipID: 0, Turn: 1})
	p.Apply(port.CraneAssigned{Party: party, CraneID: 1, ShipID: 0, Turn: 1})
	p.Apply(port.ContainersProcessed{Party: party, ShipID: 0, Processed: 10, Remaining: 0, Turn: 2})

	p.Apply(port.ShipUndocked{Party: party, ShipID: 0, BerthID: 0, Unloaded: 10, Turn: 2})

	// The ship leaves active state; its berth and cranes are free again
	assert.NotContains(t, p.Ships, shared.ShipID(0))
	assert.True(t, p.Berths[0].IsFree())
	assert.True(t, p.Cranes[0].IsFree())
	assert.True(t, p.Cranes[1].IsFree())
}

func TestPort_IgnoresOtherPartyEvents(t *testing.T) {
	p, _ := newTestPort(t)
	other := shared.NewPartyID()

	p.Apply(port.ShipArrived{Party: other, ShipID: 0, Containers: 30, Turn: 1})

	assert.Empty(t, p.Ships)
}

func TestPort_AccessorsAreSortedAndFiltered(t *testing.T) {
	p, party := newTestPort(t)
	p.Apply(port.ShipArrived{Party: party, ShipID: 2, Containers: 30, Turn: 1})
	p.Apply(port.ShipArrived{Party: party, ShipID: 0, Containers: 30, Turn: 1})
	p.Apply(port.ShipArrived{Party: party, ShipID: 1, Containers: 30, Turn: 1})
	p.Apply(port.ShipDocked{Party: party, ShipID: 1, BerthID: 0, Turn: 1})

	waiting := p.WaitingShips()
	require.Len(t, waiting, 2)
	assert.Equal(t, shared.ShipID(0), waiting[0].ID)
	assert.Equal(t, shared.ShipID(2), waiting[1].ID)

	docked := p.DockedShips()
	require.Len(t, docked, 1)
	assert.Equal(t, shared.ShipID(1), docked[0].ID)

	free := p.FreeBerths()
	require.Len(t, free, 1)
	assert.Equal(t, shared.BerthID(1), free[0].ID)
}

func TestPort_CloneSharesNoMemory(t *testing.T) {
	p, party := newTestPort(t)
	p.Apply(port.ShipArrived{Party: party, ShipID: 0, Containers: 30, Turn: 1})
	p.Apply(port.ShipDocked{Party: party, ShipID: 0, BerthID: 0, Turn: 1})

	dup := p.Clone()
	dup.Apply(port.ContainersProcessed{Party: party, ShipID: 0, Processed: 10, Remaining: 20, Turn: 1})
	dup.Apply(port.CraneAssigned{Party: party, CraneID: 0, ShipID: 0, Turn: 1})

	assert.Equal(t, 30, p.Ships[0].ContainersRemaining)
	assert.Equal(t, 0, p.Score)
	assert.True(t, p.Cranes[0].IsFree())
}
