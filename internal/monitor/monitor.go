// Package monitor provides the monitoring/analytics sink consumed by the
// forms engine. The engine's contract is fire-and-forget: Send is
// best-effort and the engine ignores sink errors, so a broken sink can never
// affect visibility decisions.
package monitor

import (
	"sync"
	"time"

	"github.com/solatis/fieldgate/internal/types"
)

// Event is a single monitoring record emitted by the engine.
type Event struct {
	Name       string         `json:"name"`
	FormID     types.FormID   `json:"formId,omitempty"`
	FieldID    string         `json:"fieldId,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Sink receives batches of monitoring events.
type Sink interface {
	Send(events []Event) error
}

// NopSink discards every event.
type NopSink struct{}

// Send implements Sink.
func (NopSink) Send([]Event) error { return nil }

// MemorySink buffers events in memory. Intended for tests and embedding.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Send implements Sink.
func (s *MemorySink) Send(events []Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

// Events returns a copy of everything received so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Reset drops all buffered events.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
