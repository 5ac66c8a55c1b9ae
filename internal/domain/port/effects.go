package port

import "github.com/andrescamacho/harbormaster-go/internal/domain/shared"

// ActiveEffect is a timed modifier currently in force. Multiplier scales
// crane throughput while the effect is active; DisabledCrane marks a crane
// as unusable for the duration (breakdowns).
type ActiveEffect struct {
	Description    string
	Multiplier     float64
	TurnsRemaining int
	DisabledCrane  *shared.CraneID
	CreatedTurn    int
}

// Expiring reports whether the effect is on its final turn
func (e *ActiveEffect) Expiring() bool {
	return e.TurnsRemaining <= 1
}

// CombinedMultiplier folds a set of active effects into one crane throughput
// multiplier. Effects compose multiplicatively; baseline is 1.0.
func CombinedMultiplier(effects []ActiveEffect) float64 {
	m := 1.0
	for _, e := range effects {
		m *= e.Multiplier
	}
	return m
}

// CraneDisabled reports whether any active effect has taken the crane out
// of service
func CraneDisabled(effects []ActiveEffect, id shared.CraneID) bool {
	for _, e := range effects {
		if e.DisabledCrane != nil && *e.DisabledCrane == id {
			return true
		}
	}
	return false
}
