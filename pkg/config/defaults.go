// Package config provides centralized default values for the alfabeauty backend
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Site Configuration
	SiteURL string

	// Content Configuration
	ContentDir string

	// Database Configuration
	DBDriver string
	DBPath   string
	DBURL    string

	// Lead Intake Configuration
	LeadRateLimit       int
	LeadRateWindow      time.Duration
	LeadPersistTimeout  time.Duration
	SalesNotifyEmail    string
	LeadNotifyEnabled   bool

	// Telemetry Configuration
	TelemetryEndpoint    string
	TelemetryTimeout     time.Duration
	TelemetryMaxAttempts int
	TelemetryQueueSize   int

	// Auth Configuration
	JWTSecret         string
	AdminPasswordHash string

	// Email Configuration
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string

	// Logging Configuration
	LogToFile    bool
	LogDirectory string
	LogLevel     string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Site Configuration
	SiteURL = getEnvString("SITE_URL", "https://www.alfabeauty.co.id")

	// Content Configuration
	ContentDir = getEnvString("CONTENT_DIR", "")

	// Database Configuration
	DBDriver = getEnvString("DB_DRIVER", "sqlite3")
	DBPath = getEnvString("DB_PATH", "alfabeauty.db")
	DBURL = getEnvString("DB_URL", "")

	// Lead Intake Configuration
	LeadRateLimit = getEnvInt("LEAD_RATE_LIMIT", 5)
	LeadRateWindow = getEnvDuration("LEAD_RATE_WINDOW", 60*time.Second)
	LeadPersistTimeout = getEnvDuration("LEAD_PERSIST_TIMEOUT", 5*time.Second)
	SalesNotifyEmail = getEnvString("SALES_NOTIFY_EMAIL", "")
	LeadNotifyEnabled = getEnvBool("LEAD_NOTIFY_ENABLED", false)

	// Telemetry Configuration
	TelemetryEndpoint = getEnvString("TELEMETRY_ENDPOINT", "")
	TelemetryTimeout = getEnvDuration("TELEMETRY_TIMEOUT", 3*time.Second)
	TelemetryMaxAttempts = getEnvInt("TELEMETRY_MAX_ATTEMPTS", 2)
	TelemetryQueueSize = getEnvInt("TELEMETRY_QUEUE_SIZE", 1024)

	// Auth Configuration
	JWTSecret = getEnvString("JWT_SECRET", "")
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")

	// Email Configuration
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@alfabeauty.co.id")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "Alfabeauty")

	// Logging Configuration
	LogToFile = getEnvBool("LOG_TO_FILE", false)
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
	LogLevel = getEnvString("LOG_LEVEL", "info")
}
