package game

import (
	"context"

	"golang.org/x/exp/rand"

	"github.com/andrescamacho/harbormaster-go/internal/application/common"
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
	"github.com/andrescamacho/harbormaster-go/internal/mcts"
)

// runEndTurn executes the fixed turn-resolution sequence. The order is part
// of the game rules:
//
//  1. process the player's docked ships
//  2. capture the waiting-ship counts for the turn penalty
//  3. opponent turn (tree search + commands), then process its docked ships
//  4. scheduled spawning
//  5. random event resolution (prune expiring effects, then draw)
//  6. close the turn and check for game over
//
// Newly spawned ships are not penalized on the turn they arrive: the counts
// are captured before spawning.
func (s *Session) runEndTurn(ctx context.Context) (EndTurnResponse, error) {
	completing := s.state.Turn + 1
	rng := common.RandFromContext(ctx)

	s.processContainers(s.state.Player, completing)

	playerWaiting := len(s.state.Player.WaitingShips())
	aiWaiting := len(s.state.AI.WaitingShips())

	s.aiTurn(ctx)
	s.processContainers(s.state.AI, completing)

	if completing%s.cfg.Game.SpawnInterval == 0 {
		s.spawnShips(rng, s.cfg.Game.SpawnCount, completing)
	}

	s.resolveRandomEvents(rng, completing)

	s.commit(port.TurnEnded{
		Turn:          completing,
		PlayerWaiting: playerWaiting,
		AIWaiting:     aiWaiting,
	})

	if completing >= s.cfg.Game.MaxTurns {
		s.finishGame(completing)
	}

	s.logger.Info().
		Int("turn", completing).
		Int("player_score", s.state.Player.Score).
		Int("ai_score", s.state.AI.Score).
		Bool("game_over", s.state.Over).
		Msg("turn completed")

	return EndTurnResponse{Turn: completing, GameOver: s.state.Over}, nil
}

// processContainers unloads every docked ship with assigned cranes on the
// given port, under the combined active-effect multiplier. A ship reaching
// zero remaining containers undocks automatically, freeing its berth and
// cranes.
func (s *Session) processContainers(p *port.Port, turn int) {
	mult := port.CombinedMultiplier(s.state.Effects)

	for _, ship := range p.DockedShips() {
		total := 0
		for _, craneID := range ship.AssignedCranes {
			if port.CraneDisabled(s.state.Effects, craneID) {
				continue
			}
			if crane, ok := p.Cranes[craneID]; ok {
				total += int(float64(crane.ContainersPerTurn()) * mult)
			}
		}
		if total <= 0 {
			continue
		}

		processed := total
		if processed > ship.ContainersRemaining {
			processed = ship.ContainersRemaining
		}
		if processed == 0 {
			continue
		}
		remaining := ship.ContainersRemaining - processed

		s.commit(port.ContainersProcessed{
			Party:     p.Party,
			ShipID:    ship.ID,
			Processed: processed,
			Remaining: remaining,
			Turn:      turn,
		})

		if remaining == 0 {
			berthID := *ship.DockedAt
			s.commit(port.ShipUndocked{
				Party:    p.Party,
				ShipID:   ship.ID,
				BerthID:  berthID,
				Unloaded: ship.Containers,
				Turn:     turn,
			})
		}
	}
}

// aiTurn lets the opponent plan with tree search and apply its chosen
// actions through the same command handlers the player uses. The opponent
// plays until it passes or exhausts its per-turn action allowance.
func (s *Session) aiTurn(ctx context.Context) {
	for i := 0; i < s.cfg.MCTS.MaxActionsPerTurn; i++ {
		snapshot := mcts.NewSimState(s.state.AI, s.state.Effects)
		action := s.engine.Search(snapshot)
		if action.Type == mcts.ActionPass {
			return
		}

		var err error
		switch action.Type {
		case mcts.ActionDock:
			_, err = s.mediator.Send(ctx, DockShipCommand{
				Party:   s.state.AIID,
				ShipID:  action.ShipID,
				BerthID: action.BerthID,
			})
		case mcts.ActionAssign:
			_, err = s.mediator.Send(ctx, AssignCraneCommand{
				Party:   s.state.AIID,
				CraneID: action.CraneID,
				ShipID:  action.ShipID,
			})
		}
		if err != nil {
			// The search ran on a snapshot of current state, so a rejection
			// here means a handler and the simulator disagree on legality.
			s.logger.Warn().Err(err).Str("action", action.String()).Msg("opponent action rejected")
			return
		}

		s.logger.Debug().Str("action", action.String()).Msg("opponent action applied")
	}
}

// spawnShips creates count arrivals per port. One load is drawn per arrival
// and mirrored to both ports so neither side gets an easier schedule; the
// paired arrivals share a ship id, which is unique within each port.
// Returns the new ids.
func (s *Session) spawnShips(rng *rand.Rand, count, turn int) []shared.ShipID {
	var ids []shared.ShipID
	for i := 0; i < count; i++ {
		load := 20 + rng.Intn(5)*10

		id := shared.ShipID(s.nextShipID)
		s.nextShipID++

		s.commit(port.ShipArrived{Party: s.state.PlayerID, ShipID: id, Containers: load, Turn: turn})
		s.commit(port.ShipArrived{Party: s.state.AIID, ShipID: id, Containers: load, Turn: turn})
		ids = append(ids, id)
	}
	return ids
}

// resolveRandomEvents prunes effects on their final turn, then draws at most
// one catalogue event. The rolled parameters travel inside the emitted
// RandomEventTriggered event, so replay never re-derives randomness.
func (s *Session) resolveRandomEvents(rng *rand.Rand, turn int) {
	expiring := make([]string, 0, len(s.state.Effects))
	for i := range s.state.Effects {
		if s.state.Effects[i].Expiring() {
			expiring = append(expiring, s.state.Effects[i].Description)
		}
	}
	for _, desc := range expiring {
		s.commit(port.EffectExpired{Description: desc, Turn: turn})
	}

	ev := s.generator.Generate()
	if ev == nil {
		return
	}

	s.commit(port.RandomEventTriggered{
		Kind:        ev.Kind,
		Description: ev.Description,
		Multiplier:  ev.Multiplier,
		Duration:    ev.Duration,
		CraneID:     ev.CraneID,
		ExtraShips:  ev.ExtraShips,
		Turn:        turn,
	})

	if ev.ExtraShips > 0 {
		s.spawnShips(rng, ev.ExtraShips, turn)
	}

	s.pending = append(s.pending, RandomEventNotice{
		Kind:        ev.Kind,
		Description: ev.Description,
		Turn:        turn,
	})

	s.logger.Info().Str("kind", string(ev.Kind)).Str("description", ev.Description).Msg("random event")
}

// finishGame compares final scores and closes the log
func (s *Session) finishGame(turn int) {
	playerScore := s.state.Player.Score
	aiScore := s.state.AI.Score

	winner := port.WinnerTie
	switch {
	case playerScore > aiScore:
		winner = port.WinnerPlayer
	case aiScore > playerScore:
		winner = port.WinnerAI
	}

	s.commit(port.GameEnded{
		Turn:        turn,
		PlayerScore: playerScore,
		AIScore:     aiScore,
		Winner:      winner,
	})
}
