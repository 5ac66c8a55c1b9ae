package game

import (
	"context"
	"fmt"

	"github.com/andrescamacho/harbormaster-go/internal/application/common"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// Query handlers. Pure reads over projected state; none of them appends
// events, and all remain usable after the game has ended.

type PortStateHandler struct {
	session *Session
}

func NewPortStateHandler(session *Session) *PortStateHandler {
	return &PortStateHandler{session: session}
}

func (h *PortStateHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	q, ok := request.(PortStateQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected PortStateQuery")
	}
	p, ok := h.session.state.PortFor(q.Party)
	if !ok {
		return nil, shared.NewNotFoundError("party", q.Party.String())
	}
	return NewPortView(p, h.session.state.Effects), nil
}

type CurrentTurnHandler struct {
	session *Session
}

func NewCurrentTurnHandler(session *Session) *CurrentTurnHandler {
	return &CurrentTurnHandler{session: session}
}

func (h *CurrentTurnHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(CurrentTurnQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected CurrentTurnQuery")
	}
	return h.session.state.Turn, nil
}

type GameOverHandler struct {
	session *Session
}

func NewGameOverHandler(session *Session) *GameOverHandler {
	return &GameOverHandler{session: session}
}

func (h *GameOverHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(GameOverQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected GameOverQuery")
	}
	return h.session.state.Over, nil
}

type WinnerHandler struct {
	session *Session
}

func NewWinnerHandler(session *Session) *WinnerHandler {
	return &WinnerHandler{session: session}
}

func (h *WinnerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(WinnerQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected WinnerQuery")
	}
	return h.session.state.Winner, nil
}

type ActiveEffectsHandler struct {
	session *Session
}

func NewActiveEffectsHandler(session *Session) *ActiveEffectsHandler {
	return &ActiveEffectsHandler{session: session}
}

func (h *ActiveEffectsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(ActiveEffectsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected ActiveEffectsQuery")
	}
	return NewEffectViews(h.session.state.Effects), nil
}
