package game

import (
	"context"
	"fmt"

	"github.com/andrescamacho/harbormaster-go/internal/application/common"
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// DockShipHandler validates and executes a dock command. Validation runs
// against projected state; only a fully valid command emits an event, so a
// rejected dock leaves the log and the state untouched.
type DockShipHandler struct {
	session *Session
}

func NewDockShipHandler(session *Session) *DockShipHandler {
	return &DockShipHandler{session: session}
}

func (h *DockShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(DockShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected DockShipCommand")
	}

	st := h.session.state
	p, ok := st.PortFor(cmd.Party)
	if !ok {
		return nil, shared.NewNotFoundError("party", cmd.Party.String())
	}

	ship, ok := p.Ships[cmd.ShipID]
	if !ok {
		return nil, shared.NewNotFoundError("ship", cmd.ShipID.String())
	}
	berth, ok := p.Berths[cmd.BerthID]
	if !ok {
		return nil, shared.NewNotFoundError("berth", cmd.BerthID.String())
	}

	if ship.IsDocked() {
		return nil, shared.NewInvalidStateError(fmt.Sprintf("%s is already docked at %s", ship.ID, *ship.DockedAt))
	}
	if !berth.IsFree() {
		return nil, shared.NewOccupiedError(berth.ID, *berth.OccupiedBy)
	}

	h.session.commit(port.ShipDocked{
		Party:   cmd.Party,
		ShipID:  cmd.ShipID,
		BerthID: cmd.BerthID,
		Turn:    st.Turn,
	})

	h.session.logger.Debug().
		Stringer("ship", cmd.ShipID).
		Stringer("berth", cmd.BerthID).
		Msg("ship docked")

	return DockShipResponse{}, nil
}
