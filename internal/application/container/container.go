// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/services"
	store "github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/content"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/email"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/persistence/database"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/persistence/leads"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/ratelimit"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/security"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/telemetry"
	"github.com/rikzacraft11-art/alfabeauty-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application Services (stateless singletons)
	LocaleService    *services.LocaleService
	CatalogService   *services.CatalogService
	ContentService   *services.ContentService
	MetadataService  *services.MetadataService
	SitemapService   *services.SitemapService
	LeadService      *services.LeadService
	TelemetryService *services.TelemetryService
	AuthService      *services.AuthService

	// Infrastructure Dependencies
	ContentStore        *store.Store
	DB                  *database.DB
	LeadLimiter         *ratelimit.Limiter
	TelemetryDispatcher *telemetry.Dispatcher
	Logger              *logging.ChanneledLogger
}

// NewContainer creates and wires all singleton services
func NewContainer(contentStore *store.Store, db *database.DB, logger *logging.ChanneledLogger) *Container {
	leadRepo := leads.NewRepository(db.DB, logger)
	leadLimiter := ratelimit.NewLimiter(config.LeadRateLimit, config.LeadRateWindow)

	dispatcher := telemetry.NewDispatcher(telemetry.Config{
		Endpoint:    config.TelemetryEndpoint,
		Timeout:     config.TelemetryTimeout,
		MaxAttempts: config.TelemetryMaxAttempts,
		QueueSize:   config.TelemetryQueueSize,
	}, logger)
	telemetryService := services.NewTelemetryService(dispatcher)

	var emailService email.Service
	if config.LeadNotifyEnabled && config.ResendAPIKey != "" {
		svc, err := email.NewService(config.ResendAPIKey, config.EmailFrom, config.EmailFromName)
		if err != nil {
			logger.Startup().Warn("Email service unavailable, lead notifications disabled", "error", err.Error())
		} else {
			emailService = svc
		}
	}

	jwtSecret := config.JWTSecret
	if jwtSecret == "" && config.AdminPasswordHash != "" {
		// Admin login stays usable without JWT_SECRET; sessions just do not
		// survive a restart.
		generated, err := security.GenerateSecureKey(64)
		if err != nil {
			logger.Startup().Error("Failed to generate session secret, admin auth disabled", "error", err.Error())
		} else {
			logger.Startup().Warn("JWT_SECRET not set, generated an ephemeral session secret")
			jwtSecret = generated
		}
	}

	catalogService := services.NewCatalogService(contentStore)
	metadataService := services.NewMetadataService(contentStore, config.SiteURL)

	return &Container{
		LocaleService:    services.NewLocaleService(contentStore),
		CatalogService:   catalogService,
		ContentService:   services.NewContentService(contentStore),
		MetadataService:  metadataService,
		SitemapService:   services.NewSitemapService(metadataService, catalogService),
		LeadService:      services.NewLeadService(leadRepo, leadLimiter, telemetryService, emailService, config.SalesNotifyEmail, config.LeadPersistTimeout, logger),
		TelemetryService: telemetryService,
		AuthService:      services.NewAuthService(jwtSecret, config.AdminPasswordHash, logger),

		ContentStore:        contentStore,
		DB:                  db,
		LeadLimiter:         leadLimiter,
		TelemetryDispatcher: dispatcher,
		Logger:              logger,
	}
}
