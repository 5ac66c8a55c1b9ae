package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/rs/zerolog"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/config"
)

// gameplayContext carries one scenario's session and the last command error
type gameplayContext struct {
	session   *game.Session
	lastErr   error
	imported  *game.Session
	importErr error
}

// InitializeGameplayScenario registers every step definition for the match
// and replay features
func InitializeGameplayScenario(sc *godog.ScenarioContext) {
	gc := &gameplayContext{}

	sc.Step(`^a fresh match with seed (\d+) and no random events$`, gc.freshMatch)
	sc.Step(`^(\d+) ships are spawned$`, gc.spawnShips)
	sc.Step(`^I dock ship (\d+) at berth (\d+)$`, gc.dockShip)
	sc.Step(`^I assign crane (\d+) to ship (\d+)$`, gc.assignCrane)
	sc.Step(`^I end the turn$`, gc.endTurn)
	sc.Step(`^I end the turn (\d+) times$`, gc.endTurnTimes)
	sc.Step(`^ship (\d+) should have been unloaded by (\d+) containers$`, gc.shipUnloadedBy)
	sc.Step(`^my port should have (\d+) ships$`, gc.portShipCount)
	sc.Step(`^the turn counter should be (\d+)$`, gc.turnCounterIs)
	sc.Step(`^the game should be over$`, gc.gameIsOver)
	sc.Step(`^the winner should match the final scores$`, gc.winnerMatchesScores)
	sc.Step(`^ending another turn should be rejected$`, gc.endTurnIsRejected)
	sc.Step(`^the command should fail with an occupied berth error$`, gc.failedWithOccupiedError)
	sc.Step(`^ship (\d+) should still be waiting$`, gc.shipIsWaiting)

	registerReplaySteps(sc, gc)
}

func (g *gameplayContext) freshMatch(seed int) error {
	cfg := config.Default()
	cfg.Game.EventProbability = 0
	cfg.MCTS.Simulations = 200

	session, err := game.NewSession(cfg, zerolog.Nop(), uint64(seed))
	if err != nil {
		return err
	}
	g.session = session
	g.lastErr = nil
	return nil
}

func (g *gameplayContext) spawnShips(count int) error {
	_, err := g.session.Submit(context.Background(), game.SpawnShipsCommand{Count: count})
	return err
}

// dockShip records the outcome instead of failing the step, so scenarios can
// assert on expected rejections
func (g *gameplayContext) dockShip(ship, berth int) error {
	_, g.lastErr = g.session.Submit(context.Background(), game.DockShipCommand{
		Party:   g.session.PlayerID(),
		ShipID:  shared.ShipID(ship),
		BerthID: shared.BerthID(berth),
	})
	return nil
}

func (g *gameplayContext) assignCrane(crane, ship int) error {
	_, err := g.session.Submit(context.Background(), game.AssignCraneCommand{
		Party:   g.session.PlayerID(),
		CraneID: shared.CraneID(crane),
		ShipID:  shared.ShipID(ship),
	})
	return err
}

func (g *gameplayContext) endTurn() error {
	_, err := g.session.Submit(context.Background(), game.EndTurnCommand{})
	return err
}

func (g *gameplayContext) endTurnTimes(count int) error {
	for i := 0; i < count; i++ {
		if err := g.endTurn(); err != nil {
			return err
		}
	}
	return nil
}

func (g *gameplayContext) playerShip(id int) (game.ShipView, error) {
	view, err := g.session.PlayerPort()
	if err != nil {
		return game.ShipView{}, err
	}
	for _, ship := range view.Ships {
		if ship.ID == shared.ShipID(id) {
			return ship, nil
		}
	}
	return game.ShipView{}, fmt.Errorf("ship %d is not in the player port", id)
}

func (g *gameplayContext) shipUnloadedBy(id, count int) error {
	ship, err := g.playerShip(id)
	if err != nil {
		return err
	}
	unloaded := ship.Containers - ship.ContainersRemaining
	if unloaded != count {
		return fmt.Errorf("expected %d containers unloaded, got %d", count, unloaded)
	}
	return nil
}

func (g *gameplayContext) portShipCount(count int) error {
	view, err := g.session.PlayerPort()
	if err != nil {
		return err
	}
	if len(view.Ships) != count {
		return fmt.Errorf("expected %d ships, got %d", count, len(view.Ships))
	}
	return nil
}

func (g *gameplayContext) turnCounterIs(turn int) error {
	if got := g.session.CurrentTurn(); got != turn {
		return fmt.Errorf("expected turn %d, got %d", turn, got)
	}
	return nil
}

func (g *gameplayContext) gameIsOver() error {
	if !g.session.IsGameOver() {
		return errors.New("expected the game to be over")
	}
	return nil
}

func (g *gameplayContext) winnerMatchesScores() error {
	player, err := g.session.PlayerPort()
	if err != nil {
		return err
	}
	ai, err := g.session.AIPort()
	if err != nil {
		return err
	}

	winner := g.session.Winner()
	switch {
	case player.Score > ai.Score && winner != "player":
		return fmt.Errorf("player leads %d to %d but winner is %q", player.Score, ai.Score, winner)
	case ai.Score > player.Score && winner != "ai":
		return fmt.Errorf("opponent leads %d to %d but winner is %q", ai.Score, player.Score, winner)
	case ai.Score == player.Score && winner != "tie":
		return fmt.Errorf("scores are tied at %d but winner is %q", player.Score, winner)
	}
	return nil
}

func (g *gameplayContext) endTurnIsRejected() error {
	_, err := g.session.Submit(context.Background(), game.EndTurnCommand{})
	var gameOverErr *shared.GameOverError
	if !errors.As(err, &gameOverErr) {
		return fmt.Errorf("expected a game over error, got %v", err)
	}
	return nil
}

func (g *gameplayContext) failedWithOccupiedError() error {
	var occupiedErr *shared.OccupiedError
	if !errors.As(g.lastErr, &occupiedErr) {
		return fmt.Errorf("expected an occupied berth error, got %v", g.lastErr)
	}
	return nil
}

func (g *gameplayContext) shipIsWaiting(id int) error {
	ship, err := g.playerShip(id)
	if err != nil {
		return err
	}
	if ship.DockedAt != nil {
		return fmt.Errorf("ship %d is docked at %s", id, *ship.DockedAt)
	}
	return nil
}
