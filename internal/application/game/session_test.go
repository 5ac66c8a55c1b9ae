package game_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/config"
)

// newTestSession builds a session with a trimmed search budget and the given
// random event probability (0 keeps scenarios deterministic)
func newTestSession(t *testing.T, seed uint64, eventProbability float64) *game.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Game.EventProbability = eventProbability
	cfg.MCTS.Simulations = 200

	session, err := game.NewSession(cfg, zerolog.Nop(), seed)
	require.NoError(t, err)
	return session
}

func TestSession_DockAssignEndTurnUnloadsBaselineRate(t *testing.T) {
	session := newTestSession(t, 1, 0)
	ctx := context.Background()

	// Arrange - 3 ships at turn 0, dock the first, put one crane on it
	resp, err := session.Submit(ctx, game.SpawnShipsCommand{Count: 3})
	require.NoError(t, err)
	require.Len(t, resp.(game.SpawnShipsResponse).ShipIDs, 3)

	_, err = session.Submit(ctx, game.DockShipCommand{Party: session.PlayerID(), ShipID: 0, BerthID: 0})
	require.NoError(t, err)
	_, err = session.Submit(ctx, game.AssignCraneCommand{Party: session.PlayerID(), CraneID: 0, ShipID: 0})
	require.NoError(t, err)

	before, err := session.PlayerPort()
	require.NoError(t, err)
	loaded := before.Ships[0].Containers

	// Act
	_, err = session.Submit(ctx, game.EndTurnCommand{})
	require.NoError(t, err)

	// Assert - one crane at baseline speed unloads exactly 10
	after, err := session.PlayerPort()
	require.NoError(t, err)
	require.Equal(t, shared.ShipID(0), after.Ships[0].ID)
	assert.Equal(t, loaded-10, after.Ships[0].ContainersRemaining)

	// +10 per container unloaded, -5 per ship still waiting (2 of them)
	assert.Equal(t, 10*10-2*5, after.Score)
}

func TestSession_SpawnsTwoShipsEveryThirdTurn(t *testing.T) {
	session := newTestSession(t, 1, 0)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := session.Submit(ctx, game.EndTurnCommand{})
		require.NoError(t, err)
	}
	view, err := session.PlayerPort()
	require.NoError(t, err)
	assert.Empty(t, view.Ships, "no arrivals before the third turn")

	_, err = session.Submit(ctx, game.EndTurnCommand{})
	require.NoError(t, err)

	view, err = session.PlayerPort()
	require.NoError(t, err)
	assert.Len(t, view.Ships, 2)

	opponent, err := session.AIPort()
	require.NoError(t, err)
	assert.Len(t, opponent.Ships, 2, "arrivals are mirrored to the opponent")
}

func TestSession_GameEndsAtMaxTurns(t *testing.T) {
	session := newTestSession(t, 7, 0)
	ctx := context.Background()

	for turn := 1; turn <= 10; turn++ {
		assert.False(t, session.IsGameOver(), "game must not end before turn 10")

		resp, err := session.Submit(ctx, game.EndTurnCommand{})
		require.NoError(t, err)
		assert.Equal(t, turn, resp.(game.EndTurnResponse).Turn)
		assert.Equal(t, turn, session.CurrentTurn(), "turn counter is monotonic")
	}

	require.True(t, session.IsGameOver())

	player, err := session.PlayerPort()
	require.NoError(t, err)
	ai, err := session.AIPort()
	require.NoError(t, err)

	switch {
	case player.Score > ai.Score:
		assert.Equal(t, port.WinnerPlayer, session.Winner())
	case ai.Score > player.Score:
		assert.Equal(t, port.WinnerAI, session.Winner())
	default:
		assert.Equal(t, port.WinnerTie, session.Winner())
	}

	// No further commands are accepted
	_, err = session.Submit(ctx, game.EndTurnCommand{})
	var gameOverErr *shared.GameOverError
	require.ErrorAs(t, err, &gameOverErr)
}

func TestSession_DockAtOccupiedBerthLeavesStateUntouched(t *testing.T) {
	session := newTestSession(t, 1, 0)
	ctx := context.Background()

	_, err := session.Submit(ctx, game.SpawnShipsCommand{Count: 2})
	require.NoError(t, err)
	_, err = session.Submit(ctx, game.DockShipCommand{Party: session.PlayerID(), ShipID: 0, BerthID: 0})
	require.NoError(t, err)

	exported, err := session.ExportReplay()
	require.NoError(t, err)

	// Act - second ship targets the occupied berth
	_, err = session.Submit(ctx, game.DockShipCommand{Party: session.PlayerID(), ShipID: 1, BerthID: 0})

	// Assert - OccupiedError, no event appended
	var occupiedErr *shared.OccupiedError
	require.ErrorAs(t, err, &occupiedErr)
	assert.Equal(t, shared.BerthID(0), occupiedErr.BerthID)
	assert.Equal(t, shared.ShipID(0), occupiedErr.Occupant)

	unchanged, err := session.ExportReplay()
	require.NoError(t, err)
	assert.Equal(t, exported, unchanged)

	view, err := session.PlayerPort()
	require.NoError(t, err)
	assert.Nil(t, view.Ships[1].DockedAt)
}

func TestSession_AssignBusyOrMissingCraneFails(t *testing.T) {
	session := newTestSession(t, 1, 0)
	ctx := context.Background()

	_, err := session.Submit(ctx, game.SpawnShipsCommand{Count: 2})
	require.NoError(t, err)
	_, err = session.Submit(ctx, game.DockShipCommand{Party: session.PlayerID(), ShipID: 0, BerthID: 0})
	require.NoError(t, err)
	_, err = session.Submit(ctx, game.AssignCraneCommand{Party: session.PlayerID(), CraneID: 0, ShipID: 0})
	require.NoError(t, err)

	// Crane 0 is taken
	_, err = session.Submit(ctx, game.AssignCraneCommand{Party: session.PlayerID(), CraneID: 0, ShipID: 0})
	var busyErr *shared.BusyError
	require.ErrorAs(t, err, &busyErr)

	// Crane 9 does not exist
	_, err = session.Submit(ctx, game.AssignCraneCommand{Party: session.PlayerID(), CraneID: 9, ShipID: 0})
	var notFoundErr *shared.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	// Ship 1 is not docked
	_, err = session.Submit(ctx, game.AssignCraneCommand{Party: session.PlayerID(), CraneID: 1, ShipID: 1})
	var invalidErr *shared.InvalidStateError
	require.ErrorAs(t, err, &invalidErr)
}

func TestSession_WaitingShipsArePenalized(t *testing.T) {
	session := newTestSession(t, 1, 0)
	ctx := context.Background()

	_, err := session.Submit(ctx, game.SpawnShipsCommand{Count: 1})
	require.NoError(t, err)

	_, err = session.Submit(ctx, game.EndTurnCommand{})
	require.NoError(t, err)

	view, err := session.PlayerPort()
	require.NoError(t, err)
	assert.Equal(t, -5, view.Score)
}

func TestSession_ExportImportRoundTrip(t *testing.T) {
	session := newTestSession(t, 42, 0.3)
	ctx := context.Background()

	_, err := session.Submit(ctx, game.SpawnShipsCommand{Count: 2})
	require.NoError(t, err)
	_, err = session.Submit(ctx, game.DockShipCommand{Party: session.PlayerID(), ShipID: 0, BerthID: 0})
	require.NoError(t, err)
	_, err = session.Submit(ctx, game.AssignCraneCommand{Party: session.PlayerID(), CraneID: 0, ShipID: 0})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = session.Submit(ctx, game.EndTurnCommand{})
		require.NoError(t, err)
	}

	exported, err := session.ExportReplay()
	require.NoError(t, err)

	cfg := config.Default()
	imported, err := game.ImportReplay(cfg, zerolog.Nop(), exported)
	require.NoError(t, err)

	wantPlayer, err := session.PlayerPort()
	require.NoError(t, err)
	gotPlayer, err := imported.PlayerPort()
	require.NoError(t, err)
	assert.Equal(t, wantPlayer, gotPlayer)

	wantAI, err := session.AIPort()
	require.NoError(t, err)
	gotAI, err := imported.AIPort()
	require.NoError(t, err)
	assert.Equal(t, wantAI, gotAI)

	assert.Equal(t, session.CurrentTurn(), imported.CurrentTurn())
	assert.Equal(t, session.ActiveEffects(), imported.ActiveEffects())
}

func TestImportReplay_RejectsCorruptInput(t *testing.T) {
	cfg := config.Default()

	cases := map[string]string{
		"malformed json": "{oops",
		"empty log":      "[]",
		"missing opener": `[{"seq":1,"type":"TurnEnded","data":{"turn":1,"player_waiting":0,"ai_waiting":0}}]`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := game.ImportReplay(cfg, zerolog.Nop(), input)
			var formatErr *shared.FormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestSession_InvariantsHoldUnderRandomEvents(t *testing.T) {
	session := newTestSession(t, 99, 0.5)
	ctx := context.Background()

	_, err := session.Submit(ctx, game.SpawnShipsCommand{Count: 2})
	require.NoError(t, err)
	_, err = session.Submit(ctx, game.DockShipCommand{Party: session.PlayerID(), ShipID: 0, BerthID: 0})
	require.NoError(t, err)
	_, err = session.Submit(ctx, game.AssignCraneCommand{Party: session.PlayerID(), CraneID: 0, ShipID: 0})
	require.NoError(t, err)

	for !session.IsGameOver() {
		_, err = session.Submit(ctx, game.EndTurnCommand{})
		require.NoError(t, err)

		for _, side := range []func() (game.PortView, error){session.PlayerPort, session.AIPort} {
			view, err := side()
			require.NoError(t, err)

			occupants := make(map[shared.ShipID]bool)
			for _, ship := range view.Ships {
				assert.LessOrEqual(t, ship.ContainersRemaining, ship.Containers)
				assert.GreaterOrEqual(t, ship.ContainersRemaining, 0)
			}
			for _, berth := range view.Berths {
				if berth.OccupiedBy != nil {
					assert.False(t, occupants[*berth.OccupiedBy], "ship occupies two berths")
					occupants[*berth.OccupiedBy] = true
				}
			}
		}
	}

	assert.Equal(t, 10, session.CurrentTurn())
}
