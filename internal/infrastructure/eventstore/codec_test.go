package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/eventstore"
)

func sampleLog(t *testing.T) []eventstore.Record {
	t.Helper()
	player := shared.NewPartyID()
	ai := shared.NewPartyID()
	crane := shared.CraneID(1)

	store := eventstore.New()
	store.Append(port.GameStarted{SessionID: "s1", PlayerID: player, AIID: ai, Berths: 2, Cranes: 2, Speed: 1.0, Seed: 42})
	store.Append(port.ShipArrived{Party: player, ShipID: 0, Containers: 30, Turn: 1})
	store.Append(port.ShipDocked{Party: player, ShipID: 0, BerthID: 0, Turn: 1})
	store.Append(port.CraneAssigned{Party: player, CraneID: 0, ShipID: 0, Turn: 1})
	store.Append(port.ContainersProcessed{Party: player, ShipID: 0, Processed: 10, Remaining: 20, Turn: 2})
	store.Append(port.ShipUndocked{Party: ai, ShipID: 0, BerthID: 1, Unloaded: 30, Turn: 2})
	store.Append(port.RandomEventTriggered{Kind: port.EventKindCraneBreakdown, Description: "breakdown", Multiplier: 1.0, Duration: 1, CraneID: &crane, Turn: 2})
	store.Append(port.EffectExpired{Description: "breakdown", Turn: 3})
	store.Append(port.TurnEnded{Turn: 3, PlayerWaiting: 1, AIWaiting: 2})
	store.Append(port.GameEnded{Turn: 3, PlayerScore: 100, AIScore: 50, Winner: port.WinnerPlayer})
	return store.Events()
}

func TestCodec_RoundTripPreservesEvents(t *testing.T) {
	records := sampleLog(t)

	text, err := eventstore.Encode(records)
	require.NoError(t, err)

	decoded, err := eventstore.Decode(text)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestDecode_RejectsMalformedJSON(t *testing.T) {
	_, err := eventstore.Decode("{not json")

	var formatErr *shared.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestDecode_RejectsUnknownEventType(t *testing.T) {
	text := `[{"seq":1,"type":"ShipTeleported","data":{}}]`

	_, err := eventstore.Decode(text)

	var formatErr *shared.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, err.Error(), "ShipTeleported")
}

func TestDecode_RejectsMissingFields(t *testing.T) {
	text := `[{"seq":1,"data":{}}]`

	_, err := eventstore.Decode(text)

	var formatErr *shared.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestDecode_RejectsNonIncreasingSequence(t *testing.T) {
	text := `[
  {"seq":2,"type":"TurnEnded","data":{"turn":1,"player_waiting":0,"ai_waiting":0}},
  {"seq":2,"type":"TurnEnded","data":{"turn":2,"player_waiting":0,"ai_waiting":0}}
]`

	_, err := eventstore.Decode(text)

	var formatErr *shared.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, err.Error(), "strictly increasing")
}
