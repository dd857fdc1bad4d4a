package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/services"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
)

// AdminHandlers contains the JWT-protected admin surface
type AdminHandlers struct {
	leadService      *services.LeadService
	telemetryService *services.TelemetryService
	logger           *logging.ChanneledLogger
}

// NewAdminHandlers creates admin handlers with injected dependencies
func NewAdminHandlers(leadService *services.LeadService, telemetryService *services.TelemetryService, logger *logging.ChanneledLogger) *AdminHandlers {
	return &AdminHandlers{
		leadService:      leadService,
		telemetryService: telemetryService,
		logger:           logger,
	}
}

// GetLeads handles GET /api/v1/admin/leads - paginated lead export
func (h *AdminHandlers) GetLeads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, total, err := h.leadService.ListLeads(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": records,
		"count": len(records),
		"total": total,
	})
}

// GetLeadMetrics handles GET /api/v1/admin/leads/metrics
func (h *AdminHandlers) GetLeadMetrics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "28"))

	daily, err := h.leadService.LeadMetrics(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sent, queueDropped, deliveryDropped := h.telemetryService.DispatchStats()
	c.JSON(http.StatusOK, gin.H{
		"daily": daily,
		"telemetry": gin.H{
			"events":           h.telemetryService.EventCounts(),
			"sent":             sent,
			"queue_dropped":    queueDropped,
			"delivery_dropped": deliveryDropped,
		},
	})
}
