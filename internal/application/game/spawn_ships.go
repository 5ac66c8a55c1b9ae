package game

import (
	"context"
	"fmt"

	"github.com/andrescamacho/harbormaster-go/internal/application/common"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// SpawnShipsHandler creates new arrivals for both ports. Loads are drawn
// once per arrival and mirrored, so neither side gets an easier schedule.
type SpawnShipsHandler struct {
	session *Session
}

func NewSpawnShipsHandler(session *Session) *SpawnShipsHandler {
	return &SpawnShipsHandler{session: session}
}

func (h *SpawnShipsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(SpawnShipsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected SpawnShipsCommand")
	}
	if cmd.Count < 0 {
		return nil, shared.NewInvalidStateError(fmt.Sprintf("cannot spawn %d ships", cmd.Count))
	}

	rng := common.RandFromContext(ctx)
	ids := h.session.spawnShips(rng, cmd.Count, h.session.state.Turn)
	return SpawnShipsResponse{ShipIDs: ids}, nil
}
