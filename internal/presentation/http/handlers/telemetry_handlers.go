package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/services"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
)

// TelemetryHandlers contains the telemetry ingestion handlers
type TelemetryHandlers struct {
	telemetryService *services.TelemetryService
	logger           *logging.ChanneledLogger
}

// NewTelemetryHandlers creates telemetry handlers with injected dependencies
func NewTelemetryHandlers(telemetryService *services.TelemetryService, logger *logging.ChanneledLogger) *TelemetryHandlers {
	return &TelemetryHandlers{
		telemetryService: telemetryService,
		logger:           logger,
	}
}

// PostTelemetry handles POST /api/v1/telemetry. It always answers fast: the
// event is queued for background delivery and the response never waits on
// the downstream collector.
func (h *TelemetryHandlers) PostTelemetry(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	name, _ := payload["event_name"].(string)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_name is required"})
		return
	}
	delete(payload, "event_name")

	h.telemetryService.Emit(name, payload)

	c.JSON(http.StatusAccepted, gin.H{"accepted": true})
}
