package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/eventstore"
)

func TestStore_AppendAssignsIncreasingSequence(t *testing.T) {
	store := eventstore.New()
	party := shared.NewPartyID()

	first := store.Append(port.ShipArrived{Party: party, ShipID: 0, Containers: 20, Turn: 1})
	second := store.Append(port.ShipArrived{Party: party, ShipID: 1, Containers: 30, Turn: 1})

	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)
	assert.Equal(t, 2, store.Len())
}

func TestStore_EventsReturnsACopy(t *testing.T) {
	store := eventstore.New()
	party := shared.NewPartyID()
	store.Append(port.ShipArrived{Party: party, ShipID: 0, Containers: 20, Turn: 1})

	events := store.Events()
	events[0].Seq = 99

	assert.Equal(t, uint64(1), store.Events()[0].Seq)
}

func TestRestore_ContinuesTheSequence(t *testing.T) {
	store := eventstore.New()
	party := shared.NewPartyID()
	store.Append(port.ShipArrived{Party: party, ShipID: 0, Containers: 20, Turn: 1})
	store.Append(port.TurnEnded{Turn: 1})

	restored := eventstore.Restore(store.Events())
	next := restored.Append(port.TurnEnded{Turn: 2})

	require.Equal(t, 3, restored.Len())
	assert.Equal(t, uint64(3), next)
}
