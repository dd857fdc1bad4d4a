// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/services"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/content"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
)

// CatalogHandlers contains all product-catalog HTTP handlers
type CatalogHandlers struct {
	catalogService *services.CatalogService
	logger         *logging.ChanneledLogger
}

// NewCatalogHandlers creates catalog handlers with injected dependencies
func NewCatalogHandlers(catalogService *services.CatalogService, logger *logging.ChanneledLogger) *CatalogHandlers {
	return &CatalogHandlers{
		catalogService: catalogService,
		logger:         logger,
	}
}

// GetProducts returns catalog entries, optionally filtered by audience,
// category, or brand query params.
func (h *CatalogHandlers) GetProducts(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received list products request", "method", c.Request.Method, "path", c.Request.URL.Path)

	filter := &content.ProductFilter{
		Audience: content.Audience(c.Query("audience")),
		Category: content.Category(c.Query("category")),
		Brand:    c.Query("brand"),
	}

	products := h.catalogService.ListProducts(filter)

	h.logger.Content().Info("List products request completed", "count", len(products), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProductBySlug returns a specific product by slug
func (h *CatalogHandlers) GetProductBySlug(c *gin.Context) {
	start := time.Now()
	slug := c.Param("slug")
	h.logger.Content().Debug("Received get product request", "slug", slug)

	product, err := h.catalogService.GetProduct(slug)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	h.logger.Content().Info("Get product request completed", "slug", slug, "duration", time.Since(start))
	c.JSON(http.StatusOK, product)
}

// GetBrands returns the distinct brands in the catalog
func (h *CatalogHandlers) GetBrands(c *gin.Context) {
	brands := h.catalogService.ListBrands()
	c.JSON(http.StatusOK, gin.H{
		"brands": brands,
		"count":  len(brands),
	})
}
