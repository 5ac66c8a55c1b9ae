package game

import (
	"context"
	"fmt"

	"github.com/andrescamacho/harbormaster-go/internal/application/common"
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// AssignCraneHandler validates and executes a crane assignment. A crane that
// is claimed by another ship or disabled by a breakdown effect is rejected
// with a BusyError.
type AssignCraneHandler struct {
	session *Session
}

func NewAssignCraneHandler(session *Session) *AssignCraneHandler {
	return &AssignCraneHandler{session: session}
}

func (h *AssignCraneHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(AssignCraneCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected AssignCraneCommand")
	}

	st := h.session.state
	p, ok := st.PortFor(cmd.Party)
	if !ok {
		return nil, shared.NewNotFoundError("party", cmd.Party.String())
	}

	crane, ok := p.Cranes[cmd.CraneID]
	if !ok {
		return nil, shared.NewNotFoundError("crane", cmd.CraneID.String())
	}
	ship, ok := p.Ships[cmd.ShipID]
	if !ok {
		return nil, shared.NewNotFoundError("ship", cmd.ShipID.String())
	}

	if !crane.IsFree() {
		return nil, shared.NewBusyError(crane.ID, fmt.Sprintf("already assigned to %s", *crane.AssignedTo))
	}
	if port.CraneDisabled(st.Effects, crane.ID) {
		return nil, shared.NewBusyError(crane.ID, "out of service")
	}
	if !ship.IsDocked() {
		return nil, shared.NewInvalidStateError(fmt.Sprintf("%s is not docked", ship.ID))
	}

	h.session.commit(port.CraneAssigned{
		Party:   cmd.Party,
		CraneID: cmd.CraneID,
		ShipID:  cmd.ShipID,
		Turn:    st.Turn,
	})

	h.session.logger.Debug().
		Stringer("crane", cmd.CraneID).
		Stringer("ship", cmd.ShipID).
		Msg("crane assigned")

	return AssignCraneResponse{}, nil
}
