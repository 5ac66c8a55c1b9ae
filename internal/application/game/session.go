// Package game wires the domain into a playable match: a projected session
// state fed by the append-only event log, command and query handlers behind
// a mediator, the fixed turn-resolution sequence and the tree-search
// opponent.
package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/andrescamacho/harbormaster-go/internal/application/common"
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/config"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/eventstore"
	"github.com/andrescamacho/harbormaster-go/internal/mcts"
)

// Session is one match between the player and the tree-search opponent.
// A single mutex serializes all access; the core has no internal
// concurrency. All mutation flows through commit, which appends to the log
// and folds the event into projected state in one step, so the log and the
// state can never disagree.
type Session struct {
	mu         sync.Mutex
	cfg        *config.Config
	logger     zerolog.Logger
	state      *State
	store      *eventstore.Store
	mediator   common.Mediator
	engine     *mcts.Engine
	rng        *rand.Rand
	generator  *port.EventGenerator
	nextShipID int
	pending    []RandomEventNotice
}

// NewSession starts a fresh match. The seed drives every random draw of the
// session (ship loads, event rolls, tree-search rollouts), so two sessions
// with the same seed and the same command sequence play out identically.
func NewSession(cfg *config.Config, logger zerolog.Logger, seed uint64) (*Session, error) {
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		cfg:       cfg,
		logger:    logger,
		state:     NewState(),
		store:     eventstore.New(),
		mediator:  common.NewMediator(),
		rng:       rng,
		generator: port.NewEventGenerator(cfg.Game.EventProbability, cfg.Game.Cranes, rng),
	}
	s.engine = mcts.New(mcts.Config{
		Simulations:         cfg.MCTS.Simulations,
		ExplorationConstant: cfg.MCTS.ExplorationConstant,
		MaxDepth:            cfg.MCTS.MaxDepth,
	}, rng)

	if err := s.registerHandlers(); err != nil {
		return nil, err
	}

	s.commit(port.GameStarted{
		SessionID: uuid.NewString(),
		PlayerID:  shared.NewPartyID(),
		AIID:      shared.NewPartyID(),
		Berths:    cfg.Game.Berths,
		Cranes:    cfg.Game.Cranes,
		Speed:     cfg.Game.CraneSpeed,
		Seed:      seed,
	})

	logger.Info().
		Str("session", s.state.SessionID).
		Uint64("seed", seed).
		Msg("session started")

	return s, nil
}

// ImportReplay rebuilds a session from an exported event log. It fails with
// a FormatError when the log is malformed or would violate a domain
// invariant when replayed.
func ImportReplay(cfg *config.Config, logger zerolog.Logger, text string) (*Session, error) {
	records, err := eventstore.Decode(text)
	if err != nil {
		return nil, err
	}

	state, err := Project(records)
	if err != nil {
		return nil, shared.NewFormatError(fmt.Sprintf("invalid event log: %v", err))
	}
	if !state.Started() {
		return nil, shared.NewFormatError("event log is empty")
	}

	rng := rand.New(rand.NewSource(state.Seed))
	s := &Session{
		cfg:       cfg,
		logger:    logger,
		state:     state,
		store:     eventstore.Restore(records),
		mediator:  common.NewMediator(),
		rng:       rng,
		generator: port.NewEventGenerator(cfg.Game.EventProbability, cfg.Game.Cranes, rng),
	}
	s.engine = mcts.New(mcts.Config{
		Simulations:         cfg.MCTS.Simulations,
		ExplorationConstant: cfg.MCTS.ExplorationConstant,
		MaxDepth:            cfg.MCTS.MaxDepth,
	}, rng)

	// Continue the ship id sequence after the highest imported arrival
	for _, r := range records {
		if ev, ok := r.Event.(port.ShipArrived); ok && int(ev.ShipID) >= s.nextShipID {
			s.nextShipID = int(ev.ShipID) + 1
		}
	}

	if err := s.registerHandlers(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("session", s.state.SessionID).
		Int("events", len(records)).
		Int("turn", s.state.Turn).
		Msg("session imported")

	return s, nil
}

func (s *Session) registerHandlers() error {
	registrations := []error{
		common.RegisterHandler[DockShipCommand](s.mediator, NewDockShipHandler(s)),
		common.RegisterHandler[AssignCraneCommand](s.mediator, NewAssignCraneHandler(s)),
		common.RegisterHandler[SpawnShipsCommand](s.mediator, NewSpawnShipsHandler(s)),
		common.RegisterHandler[EndTurnCommand](s.mediator, NewEndTurnHandler(s)),
		common.RegisterHandler[PortStateQuery](s.mediator, NewPortStateHandler(s)),
		common.RegisterHandler[CurrentTurnQuery](s.mediator, NewCurrentTurnHandler(s)),
		common.RegisterHandler[GameOverQuery](s.mediator, NewGameOverHandler(s)),
		common.RegisterHandler[WinnerQuery](s.mediator, NewWinnerHandler(s)),
		common.RegisterHandler[ActiveEffectsQuery](s.mediator, NewActiveEffectsHandler(s)),
	}
	for _, err := range registrations {
		if err != nil {
			return fmt.Errorf("register handlers: %w", err)
		}
	}
	return nil
}

// commit appends an event to the log and folds it into projected state
func (s *Session) commit(ev port.Event) {
	s.store.Append(ev)
	s.state.Apply(ev)
}

// Submit dispatches a command. Commands submitted after the game has ended
// are rejected with a GameOverError.
func (s *Session) Submit(ctx context.Context, request common.Request) (common.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Over {
		return nil, shared.NewGameOverError()
	}

	ctx = common.WithRand(ctx, s.rng)
	return s.mediator.Send(ctx, request)
}

// query dispatches a read under the session lock. Queries stay available
// after game over.
func (s *Session) query(request common.Request) (common.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mediator.Send(context.Background(), request)
}

// PlayerID returns the player's party identifier
func (s *Session) PlayerID() shared.PartyID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PlayerID
}

// AIID returns the opponent's party identifier
func (s *Session) AIID() shared.PartyID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AIID
}

// PlayerPort returns the read-only projection of the player's port
func (s *Session) PlayerPort() (PortView, error) {
	s.mu.Lock()
	party := s.state.PlayerID
	s.mu.Unlock()

	resp, err := s.query(PortStateQuery{Party: party})
	if err != nil {
		return PortView{}, err
	}
	return resp.(PortView), nil
}

// AIPort returns the read-only projection of the opponent's port
func (s *Session) AIPort() (PortView, error) {
	s.mu.Lock()
	party := s.state.AIID
	s.mu.Unlock()

	resp, err := s.query(PortStateQuery{Party: party})
	if err != nil {
		return PortView{}, err
	}
	return resp.(PortView), nil
}

// CurrentTurn returns the shared turn counter
func (s *Session) CurrentTurn() int {
	resp, _ := s.query(CurrentTurnQuery{})
	return resp.(int)
}

// IsGameOver reports whether the match has ended
func (s *Session) IsGameOver() bool {
	resp, _ := s.query(GameOverQuery{})
	return resp.(bool)
}

// Winner returns the declared result, or WinnerNone while play continues
func (s *Session) Winner() port.Winner {
	resp, _ := s.query(WinnerQuery{})
	return resp.(port.Winner)
}

// ActiveEffects returns the effects currently in force
func (s *Session) ActiveEffects() []EffectView {
	resp, _ := s.query(ActiveEffectsQuery{})
	return resp.([]EffectView)
}

// DrainRandomEvents returns the disruptions fired since the last drain and
// clears the buffer
func (s *Session) DrainRandomEvents() []RandomEventNotice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.pending
	s.pending = nil
	return out
}

// ExportReplay serializes the full event log to its text form
func (s *Session) ExportReplay() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return eventstore.Encode(s.store.Events())
}
