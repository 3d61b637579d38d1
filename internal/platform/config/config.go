package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// StorageBackend selects the persistence implementation.
type StorageBackend string

const (
	BackendPostgres StorageBackend = "postgres"
	BackendMongoDB  StorageBackend = "mongodb"
	BackendMemory   StorageBackend = "memory"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// IsValid reports whether b names a supported backend.
func (b StorageBackend) IsValid() bool {
	switch b {
	case BackendPostgres, BackendMongoDB, BackendMemory:
		return true
	}
	return false
}

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       string
	StorageBackend StorageBackend

	DatabaseURL    string
	MigrationsPath string
	MongoURI       string
	MongoDatabase  string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// AppPassword seeds the shared password when none is stored yet.
	AppPassword string

	LoginRateLimit     string
	APIRateLimit       string
	CORSAllowedOrigins []string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_BACKEND", string(BackendPostgres))
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("MONGODB_URI", "")
	viper.SetDefault("MONGODB_DATABASE", "camp_ledger")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "camp-ledger")
	viper.SetDefault("APP_PASSWORD", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		LogLevel:       strings.ToLower(viper.GetString("LOG_LEVEL")),
		StorageBackend: StorageBackend(strings.ToLower(viper.GetString("STORAGE_BACKEND"))),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		MongoURI:       viper.GetString("MONGODB_URI"),
		MongoDatabase:  viper.GetString("MONGODB_DATABASE"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		JWTIssuer:      viper.GetString("JWT_ISSUER"),
		AppPassword:    viper.GetString("APP_PASSWORD"),
		LoginRateLimit: viper.GetString("LOGIN_RATE_LIMIT"),
		APIRateLimit:   viper.GetString("API_RATE_LIMIT"),
		PosthogAPIKey:  viper.GetString("POSTHOG_API_KEY"),
	}

	// Load JWT Expiry Duration (e.g., "60m", "12h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr),
			slog.String("default", jwtExpiryDuration.String()))
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}
	if cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}

	switch c.StorageBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required for the %s backend", c.StorageBackend)
		}
	case BackendMongoDB:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required for the %s backend", c.StorageBackend)
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGODB_DATABASE is required for the %s backend", c.StorageBackend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.IsProduction && c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
