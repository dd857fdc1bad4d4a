// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/container"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/presentation/http/handlers"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/presentation/http/middleware"
	"github.com/rikzacraft11-art/alfabeauty-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware(config.SiteURL))

	// Initialize handlers
	catalogHandlers := handlers.NewCatalogHandlers(container.CatalogService, container.Logger)
	contentHandlers := handlers.NewContentHandlers(container.ContentService, container.LocaleService, container.Logger)
	metadataHandlers := handlers.NewMetadataHandlers(container.MetadataService, container.LocaleService, container.Logger)
	leadHandlers := handlers.NewLeadHandlers(container.LeadService, container.TelemetryService, container.Logger)
	telemetryHandlers := handlers.NewTelemetryHandlers(container.TelemetryService, container.Logger)
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger)
	adminHandlers := handlers.NewAdminHandlers(container.LeadService, container.TelemetryService, container.Logger)
	seoHandlers := handlers.NewSEOHandlers(container.SitemapService)
	healthHandlers := handlers.NewHealthHandlers(container.DB)

	// Crawler descriptors
	r.GET("/sitemap.xml", seoHandlers.GetSitemap)
	r.GET("/robots.txt", seoHandlers.GetRobots)

	api := r.Group("/api/v1")
	api.Use(middleware.LocaleMiddleware())
	{
		api.GET("/health", healthHandlers.GetHealth)

		// Content endpoints (locale from query or Accept-Language)
		api.GET("/content/sections", contentHandlers.GetSections)
		api.GET("/content/translations", contentHandlers.GetTranslations)

		// Catalog endpoints
		api.GET("/products", catalogHandlers.GetProducts)
		api.GET("/products/:slug", catalogHandlers.GetProductBySlug)
		api.GET("/brands", catalogHandlers.GetBrands)

		// Metadata endpoint
		api.GET("/meta/*route", metadataHandlers.GetMetadata)

		// Lead intake
		api.POST("/leads", leadHandlers.PostLead)

		// Telemetry ingestion
		api.POST("/telemetry", telemetryHandlers.PostTelemetry)

		// Authentication
		api.POST("/auth/login", authHandlers.PostLogin)

		// Admin endpoints
		admin := api.Group("/admin")
		admin.Use(authHandlers.AuthMiddleware())
		{
			admin.GET("/leads", adminHandlers.GetLeads)
			admin.GET("/leads/metrics", adminHandlers.GetLeadMetrics)
		}
	}

	// Locale-prefixed read surface for the rendering tier: the locale path
	// token must be exact, an unknown prefix 404s.
	localized := r.Group("/api/v1/pages/:locale")
	localized.Use(middleware.LocaleMiddleware())
	{
		localized.GET("/sections", contentHandlers.GetSections)
		localized.GET("/translations", contentHandlers.GetTranslations)
	}

	return r
}
