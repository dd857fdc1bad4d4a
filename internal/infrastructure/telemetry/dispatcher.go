// Package telemetry provides the fire-and-forget event dispatcher. Events
// are queued to a bounded channel and forwarded to the downstream collector
// by a background worker; the caller is never blocked and never observes a
// delivery failure.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/events"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
)

// Config controls dispatcher behavior.
type Config struct {
	Endpoint    string        // downstream collector URL; empty disables forwarding
	Timeout     time.Duration // per-attempt HTTP timeout
	MaxAttempts int           // bounded silent retries per event
	QueueSize   int           // channel capacity; enqueues past this are dropped
}

// Dispatcher owns the event queue and the delivery worker. Queue-full drops
// and delivery-exhausted drops are counted separately so backpressure is
// distinguishable from downstream failure.
type Dispatcher struct {
	config          Config
	queue           chan *events.TelemetryEvent
	client          *http.Client
	logger          *logging.ChanneledLogger
	queueDropped    atomic.Int64
	deliveryDropped atomic.Int64
	sent            atomic.Int64
}

// NewDispatcher creates a dispatcher. Start must be called before events are
// delivered; Enqueue is safe either way.
func NewDispatcher(config Config, logger *logging.ChanneledLogger) *Dispatcher {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.QueueSize < 1 {
		config.QueueSize = 1
	}

	return &Dispatcher{
		config: config,
		queue:  make(chan *events.TelemetryEvent, config.QueueSize),
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// Enqueue hands an event to the dispatcher without blocking. When the queue
// is full the event is dropped and counted; callers never wait.
func (d *Dispatcher) Enqueue(event *events.TelemetryEvent) {
	select {
	case d.queue <- event:
	default:
		d.queueDropped.Add(1)
		d.logger.Telemetry().Warn("Telemetry queue full, event dropped", "eventName", event.Name, "queueDropped", d.queueDropped.Load())
	}
}

// Start runs the delivery worker until ctx is cancelled. Events still queued
// at cancellation are abandoned; telemetry is best-effort.
func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Telemetry().Info("Telemetry dispatcher started", "endpoint", d.config.Endpoint, "queueSize", d.config.QueueSize)

	for {
		select {
		case <-ctx.Done():
			d.logger.Telemetry().Info("Telemetry dispatcher stopped",
				"sent", d.sent.Load(), "queueDropped", d.queueDropped.Load(), "deliveryDropped", d.deliveryDropped.Load())
			return
		case event := <-d.queue:
			d.deliver(ctx, event)
		}
	}
}

// deliver posts one event downstream with bounded attempts. Failures are
// logged and the event is dropped; nothing propagates to the caller.
func (d *Dispatcher) deliver(ctx context.Context, event *events.TelemetryEvent) {
	if d.config.Endpoint == "" {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		d.logger.Telemetry().Error("Failed to marshal telemetry event", "eventName", event.Name, "error", err.Error())
		return
	}

	for attempt := 1; attempt <= d.config.MaxAttempts; attempt++ {
		if err := d.post(ctx, payload); err != nil {
			d.logger.Telemetry().Warn("Telemetry delivery attempt failed",
				"eventName", event.Name, "attempt", attempt, "maxAttempts", d.config.MaxAttempts, "error", err.Error())
			continue
		}
		d.sent.Add(1)
		return
	}

	d.deliveryDropped.Add(1)
}

func (d *Dispatcher) post(ctx context.Context, payload []byte) error {
	reqCtx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, d.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &statusError{code: resp.StatusCode}
	}

	return nil
}

// Stats reports delivery counters for the admin metrics surface.
func (d *Dispatcher) Stats() (sent, queueDropped, deliveryDropped int64) {
	return d.sent.Load(), d.queueDropped.Load(), d.deliveryDropped.Load()
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return http.StatusText(e.code)
}
