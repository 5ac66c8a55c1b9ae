package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/eventstore"
)

type logBuilder struct {
	store  *eventstore.Store
	player shared.PartyID
	ai     shared.PartyID
}

func newLogBuilder() *logBuilder {
	b := &logBuilder{
		store:  eventstore.New(),
		player: shared.NewPartyID(),
		ai:     shared.NewPartyID(),
	}
	b.store.Append(port.GameStarted{
		SessionID: "test",
		PlayerID:  b.player,
		AIID:      b.ai,
		Berths:    2,
		Cranes:    2,
		Speed:     1.0,
		Seed:      1,
	})
	return b
}

func (b *logBuilder) add(ev port.Event) *logBuilder {
	b.store.Append(ev)
	return b
}

func TestProject_IsIdempotent(t *testing.T) {
	b := newLogBuilder()
	b.add(port.ShipArrived{Party: b.player, ShipID: 0, Containers: 30, Turn: 0}).
		add(port.ShipDocked{Party: b.player, ShipID: 0, BerthID: 1, Turn: 0}).
		add(port.TurnEnded{Turn: 1, PlayerWaiting: 0, AIWaiting: 0})
	records := b.store.Events()

	first, err := game.Project(records)
	require.NoError(t, err)
	second, err := game.Project(records)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProject_FoldsAFullTurn(t *testing.T) {
	b := newLogBuilder()
	b.add(port.ShipArrived{Party: b.player, ShipID: 0, Containers: 30, Turn: 0}).
		add(port.ShipDocked{Party: b.player, ShipID: 0, BerthID: 0, Turn: 0}).
		add(port.CraneAssigned{Party: b.player, CraneID: 0, ShipID: 0, Turn: 0}).
		add(port.ContainersProcessed{Party: b.player, ShipID: 0, Processed: 10, Remaining: 20, Turn: 1}).
		add(port.TurnEnded{Turn: 1, PlayerWaiting: 0, AIWaiting: 0})

	st, err := game.Project(b.store.Events())
	require.NoError(t, err)

	assert.Equal(t, 1, st.Turn)
	assert.Equal(t, 100, st.Player.Score)
	assert.Equal(t, 20, st.Player.Ships[0].ContainersRemaining)
}

func TestProject_RejectsLogWithoutOpener(t *testing.T) {
	store := eventstore.New()
	store.Append(port.TurnEnded{Turn: 1})

	_, err := game.Project(store.Events())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GameStarted")
}

func TestProject_RejectsUnknownShipReferences(t *testing.T) {
	b := newLogBuilder()
	b.add(port.ShipDocked{Party: b.player, ShipID: 5, BerthID: 0, Turn: 0})

	_, err := game.Project(b.store.Events())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ship#5")
}

func TestProject_RejectsDockingAtOccupiedBerth(t *testing.T) {
	b := newLogBuilder()
	b.add(port.ShipArrived{Party: b.player, ShipID: 0, Containers: 30, Turn: 0}).
		add(port.ShipArrived{Party: b.player, ShipID: 1, Containers: 30, Turn: 0}).
		add(port.ShipDocked{Party: b.player, ShipID: 0, BerthID: 0, Turn: 0}).
		add(port.ShipDocked{Party: b.player, ShipID: 1, BerthID: 0, Turn: 0})

	_, err := game.Project(b.store.Events())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "occupied")
}

func TestProject_RejectsIrreconcilableProcessing(t *testing.T) {
	b := newLogBuilder()
	b.add(port.ShipArrived{Party: b.player, ShipID: 0, Containers: 30, Turn: 0}).
		add(port.ShipDocked{Party: b.player, ShipID: 0, BerthID: 0, Turn: 0}).
		add(port.ContainersProcessed{Party: b.player, ShipID: 0, Processed: 10, Remaining: 10, Turn: 1})

	_, err := game.Project(b.store.Events())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconcile")
}

func TestProject_RejectsTurnCounterJumps(t *testing.T) {
	b := newLogBuilder()
	b.add(port.TurnEnded{Turn: 1}).
		add(port.TurnEnded{Turn: 3})

	_, err := game.Project(b.store.Events())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "turn counter")
}

func TestProject_RejectsEventsAfterGameEnded(t *testing.T) {
	b := newLogBuilder()
	b.add(port.TurnEnded{Turn: 1}).
		add(port.GameEnded{Turn: 1, Winner: port.WinnerTie}).
		add(port.TurnEnded{Turn: 2})

	_, err := game.Project(b.store.Events())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after GameEnded")
}

func TestProject_RejectsDuplicateOpener(t *testing.T) {
	b := newLogBuilder()
	b.add(port.GameStarted{SessionID: "again", PlayerID: b.player, AIID: b.ai, Berths: 2, Cranes: 2, Speed: 1.0, Seed: 2})

	_, err := game.Project(b.store.Events())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
