package port

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// RandomEventKind tags the fixed catalogue of disruptions
type RandomEventKind string

const (
	EventKindStorm             RandomEventKind = "Storm"
	EventKindGoodWeather       RandomEventKind = "GoodWeather"
	EventKindCraneBreakdown    RandomEventKind = "CraneBreakdown"
	EventKindRushHour          RandomEventKind = "RushHour"
	EventKindCustomsInspection RandomEventKind = "CustomsInspection"
)

// Fixed catalogue multipliers. Durations and the breakdown target are rolled
// per draw; the multipliers themselves are constants of the game.
const (
	StormMultiplier   = 0.5
	WeatherMultiplier = 1.3
	CustomsMultiplier = 0.7
)

// RandomEvent is a transient draw from the catalogue. It is not persisted
// itself; its consequence (an ActiveEffect or extra ship spawns) is recorded
// as a RandomEventTriggered domain event carrying the rolled parameters.
type RandomEvent struct {
	Kind        RandomEventKind
	Description string
	Multiplier  float64
	Duration    int
	CraneID     *shared.CraneID
	ExtraShips  int
}

// Timed reports whether the event materializes as an ActiveEffect
func (e *RandomEvent) Timed() bool {
	return e.Kind != EventKindRushHour
}

// EventGenerator draws catalogue events with a per-turn probability.
// Randomness comes exclusively from the injected source so that a fixed
// seed yields a fixed draw sequence.
type EventGenerator struct {
	probability float64
	numCranes   int
	rng         *rand.Rand
}

func NewEventGenerator(probability float64, numCranes int, rng *rand.Rand) *EventGenerator {
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	return &EventGenerator{probability: probability, numCranes: numCranes, rng: rng}
}

// Generate draws one event or returns nil when no event fires this turn
func (g *EventGenerator) Generate() *RandomEvent {
	if g.rng.Float64() >= g.probability {
		return nil
	}

	switch g.rng.Intn(5) {
	case 0:
		duration := 1 + g.rng.Intn(3)
		return &RandomEvent{
			Kind:        EventKindStorm,
			Description: fmt.Sprintf("Storm! Crane efficiency halved for %d turn(s)", duration),
			Multiplier:  StormMultiplier,
			Duration:    duration,
		}
	case 1:
		duration := 1 + g.rng.Intn(3)
		return &RandomEvent{
			Kind:        EventKindGoodWeather,
			Description: fmt.Sprintf("Good weather! Crane efficiency up 30%% for %d turn(s)", duration),
			Multiplier:  WeatherMultiplier,
			Duration:    duration,
		}
	case 2:
		craneID := shared.CraneID(g.rng.Intn(g.numCranes))
		duration := 1 + g.rng.Intn(2)
		return &RandomEvent{
			Kind:        EventKindCraneBreakdown,
			Description: fmt.Sprintf("Breakdown! %s is out of service for %d turn(s)", craneID, duration),
			Multiplier:  1.0,
			Duration:    duration,
			CraneID:     &craneID,
		}
	case 3:
		extra := 1 + g.rng.Intn(3)
		return &RandomEvent{
			Kind:        EventKindRushHour,
			Description: fmt.Sprintf("Rush hour! %d additional ship(s) arriving", extra),
			Multiplier:  1.0,
			ExtraShips:  extra,
		}
	default:
		duration := 1 + g.rng.Intn(2)
		return &RandomEvent{
			Kind:        EventKindCustomsInspection,
			Description: fmt.Sprintf("Customs inspection! Processing slowed for %d turn(s)", duration),
			Multiplier:  CustomsMultiplier,
			Duration:    duration,
		}
	}
}
