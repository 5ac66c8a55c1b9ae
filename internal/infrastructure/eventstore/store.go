// Package eventstore provides the in-memory append-only log that is the
// source of truth for a game session. Events are never mutated after append;
// current state is a fold over the ordered sequence.
package eventstore

import (
	"sync"

	"github.com/andrescamacho/harbormaster-go/internal/domain/port"
)

// Record is one appended event with its assigned sequence number
type Record struct {
	Seq   uint64
	Event port.Event
}

// Store is the append-only event log. A single mutex serializes appends;
// the core has no internal concurrency beyond that.
type Store struct {
	mu      sync.Mutex
	records []Record
	nextSeq uint64
}

func New() *Store {
	return &Store{nextSeq: 1}
}

// Append adds a structurally valid event to the log and returns its strictly
// increasing sequence number. Append never rejects a valid event.
func (s *Store) Append(ev port.Event) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.nextSeq
	s.nextSeq++
	s.records = append(s.records, Record{Seq: seq, Event: ev})
	return seq
}

// Events returns a copy of the ordered log
func (s *Store) Events() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of appended events
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Restore seeds a fresh store from previously exported records, continuing
// the sequence after the highest restored number
func Restore(records []Record) *Store {
	s := New()
	s.records = append(s.records, records...)
	for _, r := range records {
		if r.Seq >= s.nextSeq {
			s.nextSeq = r.Seq + 1
		}
	}
	return s
}
