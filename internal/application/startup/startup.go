// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/application/container"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/content"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/persistence/database"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/presentation/http/server"
	"github.com/rikzacraft11-art/alfabeauty-go/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	// Step 1: Create the channeled logger
	logger, err := logging.NewChanneledLogger(loggerConfig())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Startup().Info("Starting alfabeauty backend")

	// Step 2: Load and validate site content. Authoring defects abort here,
	// never at serve time.
	logger.Startup().Info("Loading site content...", "contentDir", config.ContentDir)
	contentStore, err := content.Load(config.ContentDir)
	if err != nil {
		return fmt.Errorf("content load failed: %w", err)
	}
	logger.Startup().Info("Site content loaded and validated",
		"products", len(contentStore.Products()),
		"sections", len(contentStore.Sections()))

	// Step 3: Connect the lead store
	logger.Startup().Info("Connecting lead database...", "driver", config.DBDriver)
	dsn := config.DBPath
	if config.DBDriver == "libsql" && config.DBURL != "" {
		dsn = config.DBURL
	}
	db, err := database.NewConnectionWithLogger(config.DBDriver, dsn, logger)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	if err := database.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	logger.Startup().Info("Lead database ready")

	// Step 4: Create dependency injection container
	logger.Startup().Info("Initializing dependency injection container...")
	appContainer := container.NewContainer(contentStore, db, logger)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 5: Start background workers
	go appContainer.TelemetryDispatcher.Start(ctx)
	go appContainer.LeadLimiter.StartPruning(ctx, config.LeadRateWindow, logger)
	logger.Startup().Info("Background workers started")

	// Step 6: Start HTTP server
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+config.Port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", config.Port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	// Cancel background tasks
	cancelBackgroundTasks()

	// Stop server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Closing database...")
	if err := db.Close(); err != nil {
		logger.Shutdown().Error("Error closing database", "error", err.Error())
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

func loggerConfig() *logging.LoggerConfig {
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = config.LogToFile
	cfg.LogDirectory = config.LogDirectory

	switch strings.ToLower(config.LogLevel) {
	case "debug":
		cfg.DefaultLevel = slog.LevelDebug
	case "warn":
		cfg.DefaultLevel = slog.LevelWarn
	case "error":
		cfg.DefaultLevel = slog.LevelError
	}

	return cfg
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
