package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/services"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/lead"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
)

// maxLeadBodyBytes bounds the accepted form payload.
const maxLeadBodyBytes = 64 * 1024

// LeadHandlers contains the lead-submission HTTP handlers
type LeadHandlers struct {
	leadService      *services.LeadService
	telemetryService *services.TelemetryService
	logger           *logging.ChanneledLogger
}

// NewLeadHandlers creates lead handlers with injected dependencies
func NewLeadHandlers(leadService *services.LeadService, telemetryService *services.TelemetryService, logger *logging.ChanneledLogger) *LeadHandlers {
	return &LeadHandlers{
		leadService:      leadService,
		telemetryService: telemetryService,
		logger:           logger,
	}
}

// PostLead handles POST /api/v1/leads - the contact/partnership form intake.
// The content-type gate runs before any body read so a malformed body can
// never mask the real rejection reason.
func (h *LeadHandlers) PostLead(c *gin.Context) {
	start := time.Now()
	h.logger.Lead().Debug("Received lead submission", "method", c.Request.Method, "path", c.Request.URL.Path)

	contentType := c.GetHeader("Content-Type")
	if mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0]); mediaType != "application/json" {
		h.telemetryService.Emit("lead_rejected", map[string]any{"reason": string(lead.OutcomeRejectedContentType)})
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "content_type_must_be_application_json"})
		return
	}

	rawPayload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLeadBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	var req services.SubmissionRequest
	if err := json.Unmarshal(rawPayload, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.leadService.Submit(c.Request.Context(), c.ClientIP(), &req, rawPayload)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	h.logger.Lead().Info("Lead submission acknowledged", "leadId", result.LeadID, "duplicate", result.Duplicate, "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"lead_id":   result.LeadID,
		"remaining": result.Rate.Remaining,
		"reset":     result.Rate.Reset.UnixMilli(),
	})
}

func (h *LeadHandlers) respondSubmitError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_failed",
			"fields": validationErr.Fields,
		})
		return
	}

	var rateErr *services.RateLimitError
	if errors.As(err, &rateErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success":   false,
			"error":     "rate_limit_exceeded",
			"remaining": 0,
			"reset":     rateErr.Result.Reset.UnixMilli(),
		})
		return
	}

	if errors.Is(err, services.ErrPersistFailed) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "storage_unavailable",
			"retryable": true,
		})
		return
	}

	h.logger.Lead().Error("Unexpected lead submission failure", "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
