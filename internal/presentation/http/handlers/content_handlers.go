package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/services"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/presentation/http/middleware"
)

// ContentHandlers contains handlers for localized page content
type ContentHandlers struct {
	contentService *services.ContentService
	localeService  *services.LocaleService
	logger         *logging.ChanneledLogger
}

// NewContentHandlers creates content handlers with injected dependencies
func NewContentHandlers(contentService *services.ContentService, localeService *services.LocaleService, logger *logging.ChanneledLogger) *ContentHandlers {
	return &ContentHandlers{
		contentService: contentService,
		localeService:  localeService,
		logger:         logger,
	}
}

// GetSections returns the localized home-page sections
func (h *ContentHandlers) GetSections(c *gin.Context) {
	start := time.Now()
	locale := middleware.GetLocale(c)

	sections := h.contentService.Sections(locale)

	h.logger.Content().Info("Get sections request completed", "locale", locale, "count", len(sections), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"locale":   locale,
		"sections": sections,
	})
}

// GetTranslations returns the full translation dictionary for a locale
func (h *ContentHandlers) GetTranslations(c *gin.Context) {
	locale := middleware.GetLocale(c)

	c.JSON(http.StatusOK, gin.H{
		"locale":       locale,
		"translations": h.localeService.TranslationsFor(locale),
	})
}
