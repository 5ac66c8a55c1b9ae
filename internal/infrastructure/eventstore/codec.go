package eventstore

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
)

// envelope is the wire form of one record: a type tag plus the event payload
type envelope struct {
	Seq  uint64          `json:"seq" validate:"required"`
	Type port.EventType  `json:"type" validate:"required"`
	Data json.RawMessage `json:"data" validate:"required"`
}

var validate = validator.New()

// Encode serializes the ordered log to its text export form
func Encode(records []Record) (string, error) {
	envelopes := make([]envelope, 0, len(records))
	for _, r := range records {
		data, err := json.Marshal(r.Event)
		if err != nil {
			return "", fmt.Errorf("encode event %d: %w", r.Seq, err)
		}
		envelopes = append(envelopes, envelope{Seq: r.Seq, Type: r.Event.EventType(), Data: data})
	}

	out, err := json.MarshalIndent(envelopes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode log: %w", err)
	}
	return string(out), nil
}

// Decode parses an exported log. It fails with a FormatError on malformed
// input: invalid JSON, unknown event types, missing fields, or a sequence
// that is not strictly increasing. Domain invariants are checked separately
// by replaying the decoded records through the projector.
func Decode(text string) ([]Record, error) {
	var envelopes []envelope
	if err := json.Unmarshal([]byte(text), &envelopes); err != nil {
		return nil, shared.NewFormatError(fmt.Sprintf("malformed event log: %v", err))
	}

	records := make([]Record, 0, len(envelopes))
	var lastSeq uint64
	for i, env := range envelopes {
		if err := validate.Struct(env); err != nil {
			return nil, shared.NewFormatError(fmt.Sprintf("event %d: missing required fields: %v", i, err))
		}
		if env.Seq <= lastSeq {
			return nil, shared.NewFormatError(fmt.Sprintf("event %d: sequence %d is not strictly increasing", i, env.Seq))
		}
		lastSeq = env.Seq

		ev, err := decodeEvent(env.Type, env.Data)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Seq: env.Seq, Event: ev})
	}
	return records, nil
}

func decodeEvent(t port.EventType, data json.RawMessage) (port.Event, error) {
	unmarshal := func(v any) (port.Event, error) {
		if err := json.Unmarshal(data, v); err != nil {
			return nil, shared.NewFormatError(fmt.Sprintf("malformed %s payload: %v", t, err))
		}
		ev, ok := derefEvent(v)
		if !ok {
			return nil, shared.NewFormatError(fmt.Sprintf("unsupported payload for %s", t))
		}
		return ev, nil
	}

	switch t {
	case port.EventGameStarted:
		return unmarshal(&port.GameStarted{})
	case port.EventShipArrived:
		return unmarshal(&port.ShipArrived{})
	case port.EventShipDocked:
		return unmarshal(&port.ShipDocked{})
	case port.EventCraneAssigned:
		return unmarshal(&port.CraneAssigned{})
	case port.EventContainersProcessed:
		return unmarshal(&port.ContainersProcessed{})
	case port.EventShipUndocked:
		return unmarshal(&port.ShipUndocked{})
	case port.EventRandomEventTriggered:
		return unmarshal(&port.RandomEventTriggered{})
	case port.EventEffectExpired:
		return unmarshal(&port.EffectExpired{})
	case port.EventTurnEnded:
		return unmarshal(&port.TurnEnded{})
	case port.EventGameEnded:
		return unmarshal(&port.GameEnded{})
	default:
		return nil, shared.NewFormatError(fmt.Sprintf("unknown event type %q", t))
	}
}

func derefEvent(v any) (port.Event, bool) {
	switch e := v.(type) {
	case *port.GameStarted:
		return *e, true
	case *port.ShipArrived:
		return *e, true
	case *port.ShipDocked:
		return *e, true
	case *port.CraneAssigned:
		return *e, true
	case *port.ContainersProcessed:
		return *e, true
	case *port.ShipUndocked:
		return *e, true
	case *port.RandomEventTriggered:
		return *e, true
	case *port.EffectExpired:
		return *e, true
	case *port.TurnEnded:
		return *e, true
	case *port.GameEnded:
		return *e, true
	default:
		return nil, false
	}
}
