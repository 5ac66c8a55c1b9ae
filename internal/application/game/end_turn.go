package game

import (
	"context"
	"fmt"

	"github.com/andrescamacho/harbormaster-go/internal/application/common"
)

// EndTurnHandler runs the fixed turn-resolution sequence: process the
// player's containers, let the opponent move and process, spawn scheduled
// arrivals, resolve random events, close the turn and check for game over.
type EndTurnHandler struct {
	session *Session
}

func NewEndTurnHandler(session *Session) *EndTurnHandler {
	return &EndTurnHandler{session: session}
}

func (h *EndTurnHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(EndTurnCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected EndTurnCommand")
	}
	return h.session.runEndTurn(ctx)
}
