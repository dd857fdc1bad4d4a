package services

import (
	"sync"
	"time"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/events"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/security"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/telemetry"
)

// TelemetryService accepts telemetry events from handlers and the lead
// pipeline, hands them to the background dispatcher, and keeps per-event
// counters for the admin surface. Emitting is always non-blocking; no caller
// ever depends on delivery.
type TelemetryService struct {
	dispatcher *telemetry.Dispatcher
	mu         sync.Mutex
	counts     map[string]int64
}

// NewTelemetryService creates a new telemetry application service
func NewTelemetryService(dispatcher *telemetry.Dispatcher) *TelemetryService {
	return &TelemetryService{
		dispatcher: dispatcher,
		counts:     make(map[string]int64),
	}
}

// Emit records and enqueues one event. Fire-and-forget: there is no error
// to return.
func (s *TelemetryService) Emit(name string, context map[string]any) {
	s.mu.Lock()
	s.counts[name]++
	s.mu.Unlock()

	s.dispatcher.Enqueue(&events.TelemetryEvent{
		ID:        security.GenerateULID(),
		Name:      name,
		Context:   context,
		CreatedAt: time.Now().UTC(),
	})
}

// EventCounts returns a snapshot of per-event-name counters.
func (s *TelemetryService) EventCounts() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]int64, len(s.counts))
	for name, count := range s.counts {
		snapshot[name] = count
	}
	return snapshot
}

// DispatchStats reports the dispatcher's sent and per-cause drop counters.
func (s *TelemetryService) DispatchStats() (sent, queueDropped, deliveryDropped int64) {
	return s.dispatcher.Stats()
}
