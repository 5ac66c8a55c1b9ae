package game

import (
	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// State is the projected session state: both ports, the shared turn counter,
// the active effects and the terminal result. It is a pure fold over the
// event log; live play and replay build it through the same Apply.
type State struct {
	SessionID string
	Seed      uint64
	PlayerID  shared.PartyID
	AIID      shared.PartyID
	Player    *port.Port
	AI        *port.Port
	Turn      int
	Over      bool
	Winner    port.Winner
	Effects   []port.ActiveEffect
}

// NewState returns the empty pre-GameStarted state
func NewState() *State {
	return &State{Winner: port.WinnerNone}
}

// Started reports whether the opening GameStarted event has been folded
func (st *State) Started() bool {
	return st.Player != nil
}

// PortFor resolves a party to its port
func (st *State) PortFor(party shared.PartyID) (*port.Port, bool) {
	switch {
	case st.Started() && party.Equals(st.PlayerID):
		return st.Player, true
	case st.Started() && party.Equals(st.AIID):
		return st.AI, true
	}
	return nil, false
}

// Apply folds one event into the state. Session-level events are handled
// here; party-scoped events are forwarded to both ports, which filter by
// party themselves.
func (st *State) Apply(ev port.Event) {
	switch e := ev.(type) {
	case port.GameStarted:
		st.SessionID = e.SessionID
		st.Seed = e.Seed
		st.PlayerID = e.PlayerID
		st.AIID = e.AIID
		st.Player = port.NewPort(e.PlayerID, e.Berths, e.Cranes, e.Speed)
		st.AI = port.NewPort(e.AIID, e.Berths, e.Cranes, e.Speed)

	case port.RandomEventTriggered:
		if e.Duration > 0 {
			st.Effects = append(st.Effects, port.ActiveEffect{
				Description:    e.Description,
				Multiplier:     e.Multiplier,
				TurnsRemaining: e.Duration,
				DisabledCrane:  e.CraneID,
				CreatedTurn:    e.Turn,
			})
		}

	case port.EffectExpired:
		for i := range st.Effects {
			if st.Effects[i].Description == e.Description && st.Effects[i].Expiring() {
				st.Effects = append(st.Effects[:i], st.Effects[i+1:]...)
				break
			}
		}

	case port.TurnEnded:
		st.Turn = e.Turn
		st.Player.Score -= 5 * e.PlayerWaiting
		st.AI.Score -= 5 * e.AIWaiting
		st.Player.Turn = e.Turn
		st.AI.Turn = e.Turn
		// Effects created this turn start ticking next turn
		for i := range st.Effects {
			if st.Effects[i].CreatedTurn < e.Turn {
				st.Effects[i].TurnsRemaining--
			}
		}

	case port.GameEnded:
		st.Over = true
		st.Winner = e.Winner

	default:
		st.Player.Apply(ev)
		st.AI.Apply(ev)
	}
}
