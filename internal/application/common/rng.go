package common

import (
	"context"
	"time"

	"golang.org/x/exp/rand"
)

// Context key for passing the session RNG through context
type contextKey int

const rngKey contextKey = iota

// WithRand adds a seeded random source to the context. Handlers that need
// randomness (ship loads, event draws) read it from here instead of ambient
// global state, so replay and tests stay deterministic.
func WithRand(ctx context.Context, rng *rand.Rand) context.Context {
	return context.WithValue(ctx, rngKey, rng)
}

// RandFromContext extracts the random source from context, or returns a
// time-seeded fallback if none was attached
func RandFromContext(ctx context.Context) *rand.Rand {
	if rng, ok := ctx.Value(rngKey).(*rand.Rand); ok {
		return rng
	}
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
