// Package events provides event types
package events

import "time"

// TelemetryEvent is a single fire-and-forget analytics event. Context holds
// arbitrary caller-supplied key/value pairs forwarded verbatim downstream.
type TelemetryEvent struct {
	ID        string         `json:"id"`
	Name      string         `json:"event_name"`
	Context   map[string]any `json:"context,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
