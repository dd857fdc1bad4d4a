package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/services"
)

// SEOHandlers serves the crawler descriptors derived from the metadata
// builder's base URL.
type SEOHandlers struct {
	sitemapService *services.SitemapService
}

// NewSEOHandlers creates SEO handlers with injected dependencies
func NewSEOHandlers(sitemapService *services.SitemapService) *SEOHandlers {
	return &SEOHandlers{sitemapService: sitemapService}
}

// GetSitemap handles GET /sitemap.xml
func (h *SEOHandlers) GetSitemap(c *gin.Context) {
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(h.sitemapService.SitemapXML()))
}

// GetRobots handles GET /robots.txt
func (h *SEOHandlers) GetRobots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.sitemapService.RobotsTxt()))
}
