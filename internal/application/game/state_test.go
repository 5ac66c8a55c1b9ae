package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

func startedState() (*game.State, shared.PartyID, shared.PartyID) {
	player := shared.NewPartyID()
	ai := shared.NewPartyID()
	st := game.NewState()
	st.Apply(port.GameStarted{SessionID: "test", PlayerID: player, AIID: ai, Berths: 2, Cranes: 2, Speed: 1.0, Seed: 1})
	return st, player, ai
}

func TestState_GameStartedBuildsBothPorts(t *testing.T) {
	st, player, ai := startedState()

	require.True(t, st.Started())
	assert.Len(t, st.Player.Berths, 2)
	assert.Len(t, st.AI.Cranes, 2)

	got, ok := st.PortFor(player)
	require.True(t, ok)
	assert.Same(t, st.Player, got)
	got, ok = st.PortFor(ai)
	require.True(t, ok)
	assert.Same(t, st.AI, got)

	_, ok = st.PortFor(shared.NewPartyID())
	assert.False(t, ok)
}

func TestState_EffectTicksStartTheTurnAfterCreation(t *testing.T) {
	st, _, _ := startedState()

	// Effect created while turn 1 resolves, lasting 2 turns: it influences
	// turns 2 and 3, losing a tick at the close of turn 2
	st.Apply(port.RandomEventTriggered{
		Kind:        port.EventKindStorm,
		Description: "storm",
		Multiplier:  0.5,
		Duration:    2,
		Turn:        1,
	})
	st.Apply(port.TurnEnded{Turn: 1})

	require.Len(t, st.Effects, 1)
	assert.Equal(t, 2, st.Effects[0].TurnsRemaining)

	st.Apply(port.TurnEnded{Turn: 2})
	require.Len(t, st.Effects, 1)
	assert.Equal(t, 1, st.Effects[0].TurnsRemaining)
	assert.True(t, st.Effects[0].Expiring())

	st.Apply(port.EffectExpired{Description: "storm", Turn: 3})
	assert.Empty(t, st.Effects)
}

func TestState_EffectCreatedThisTurnIsNotDecrementedByItsOwnTurnEnd(t *testing.T) {
	st, _, _ := startedState()

	st.Apply(port.RandomEventTriggered{
		Kind:        port.EventKindCustomsInspection,
		Description: "customs",
		Multiplier:  0.7,
		Duration:    1,
		Turn:        1,
	})
	st.Apply(port.TurnEnded{Turn: 1})

	require.Len(t, st.Effects, 1)
	assert.Equal(t, 1, st.Effects[0].TurnsRemaining)
}

func TestState_RushHourCreatesNoEffect(t *testing.T) {
	st, _, _ := startedState()

	st.Apply(port.RandomEventTriggered{
		Kind:        port.EventKindRushHour,
		Description: "rush hour",
		Multiplier:  1.0,
		ExtraShips:  2,
		Turn:        1,
	})

	assert.Empty(t, st.Effects)
}

func TestState_TurnEndedAppliesWaitingPenalties(t *testing.T) {
	st, _, _ := startedState()

	st.Apply(port.TurnEnded{Turn: 1, PlayerWaiting: 2, AIWaiting: 1})

	assert.Equal(t, 1, st.Turn)
	assert.Equal(t, -10, st.Player.Score)
	assert.Equal(t, -5, st.AI.Score)
}

func TestState_GameEndedDeclaresWinner(t *testing.T) {
	st, _, _ := startedState()
	assert.Equal(t, port.WinnerNone, st.Winner)

	st.Apply(port.TurnEnded{Turn: 1})
	st.Apply(port.GameEnded{Turn: 1, PlayerScore: 10, AIScore: 20, Winner: port.WinnerAI})

	assert.True(t, st.Over)
	assert.Equal(t, port.WinnerAI, st.Winner)
}
