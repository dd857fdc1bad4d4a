package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/persistence/database"
)

// HealthHandlers reports process and dependency health
type HealthHandlers struct {
	db *database.DB
}

// NewHealthHandlers creates health handlers with injected dependencies
func NewHealthHandlers(db *database.DB) *HealthHandlers {
	return &HealthHandlers{db: db}
}

// GetHealth handles GET /api/v1/health
func (h *HealthHandlers) GetHealth(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "ok",
	})
}
