package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/services"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/seo"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/presentation/http/middleware"
)

// MetadataHandlers contains handlers for the SEO metadata surface
type MetadataHandlers struct {
	metadataService *services.MetadataService
	localeService   *services.LocaleService
	logger          *logging.ChanneledLogger
}

// NewMetadataHandlers creates metadata handlers with injected dependencies
func NewMetadataHandlers(metadataService *services.MetadataService, localeService *services.LocaleService, logger *logging.ChanneledLogger) *MetadataHandlers {
	return &MetadataHandlers{
		metadataService: metadataService,
		localeService:   localeService,
		logger:          logger,
	}
}

// GetMetadata computes PageMetadata plus structured data for a route. The
// wildcard path after /meta is the locale-less route, e.g.
// /api/v1/meta/products/argan-shine-serum?locale=id.
func (h *MetadataHandlers) GetMetadata(c *gin.Context) {
	start := time.Now()
	locale := middleware.GetLocale(c)

	template, params := matchRoute(c.Param("route"))
	meta := h.metadataService.BuildMetadata(locale, template, params)
	breadcrumbs := h.metadataService.BuildBreadcrumbs(h.breadcrumbTrail(locale, template, params, meta))

	h.logger.Content().Info("Get metadata request completed", "locale", locale, "route", template, "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"metadata":     meta,
		"breadcrumbs":  breadcrumbs,
		"organization": h.metadataService.BuildOrganization(),
	})
}

// matchRoute maps a concrete request path onto a registered route template.
func matchRoute(path string) (template string, params map[string]string) {
	if path == "" || path == "/" {
		return "/", nil
	}
	path = "/" + strings.Trim(path, "/")

	if strings.HasPrefix(path, "/products/") {
		slug := strings.TrimPrefix(path, "/products/")
		if slug != "" && !strings.Contains(slug, "/") {
			return "/products/:slug", map[string]string{"slug": slug}
		}
	}

	for _, route := range services.StaticRoutes {
		if route.Template == path {
			return path, nil
		}
	}

	return path, nil
}

// breadcrumbTrail derives the breadcrumb list for a route from its template.
// Crumb names come from the locale's dictionary, not hardcoded copy.
func (h *MetadataHandlers) breadcrumbTrail(locale i18n.Locale, template string, params map[string]string, meta seo.PageMetadata) []seo.Crumb {
	localePrefix := "/" + string(locale)

	crumbs := []seo.Crumb{{Name: h.localeService.Translate(locale, "nav.home"), URL: localePrefix}}
	if template == "/" {
		return crumbs
	}

	if template == "/products/:slug" {
		crumbs = append(crumbs,
			seo.Crumb{Name: h.localeService.Translate(locale, "nav.products"), URL: localePrefix + "/products"},
			seo.Crumb{Name: meta.Title, URL: localePrefix + "/products/" + params["slug"]},
		)
		return crumbs
	}

	crumbs = append(crumbs, seo.Crumb{Name: meta.Title, URL: localePrefix + template})
	return crumbs
}
