// Package config provides centralized configuration management for the
// wedding planner service. Settings load from environment variables with
// defaults and are validated on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Upload      UploadConfig
	ImageSearch ImageSearchConfig
	Blob        BlobConfig
	Budget      BudgetConfig
	Logging     LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// MaxConns is the maximum number of pooled connections (default: 20)
	MaxConns int `env:"DB_MAX_CONNS" default:"20"`

	// MinConns is the minimum number of connections to keep open (default: 4)
	MinConns int `env:"DB_MIN_CONNS" default:"4"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before close (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// AuthConfig holds credential-login settings.
type AuthConfig struct {
	// Secret signs session tokens (required)
	Secret string `env:"AUTH_SECRET" required:"true"`

	// TokenTTL is how long an issued token stays valid (default: 24h)
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" default:"24h"`

	// BootstrapUsername, when set together with BootstrapPassword,
	// creates an initial account at startup if it does not exist
	BootstrapUsername string `env:"AUTH_BOOTSTRAP_USERNAME"`

	// BootstrapPassword is the initial account's password
	BootstrapPassword string `env:"AUTH_BOOTSTRAP_PASSWORD"`

	// BootstrapName is the initial account's display name (default: Planner)
	BootstrapName string `env:"AUTH_BOOTSTRAP_NAME" default:"Planner"`
}

// UploadConfig holds file upload limits.
type UploadConfig struct {
	// MaxImportSize caps guest CSV uploads in bytes (default: 10MB)
	MaxImportSize int64 `env:"UPLOAD_MAX_IMPORT_SIZE" default:"10485760"`

	// MaxImageSize caps vision-board image uploads in bytes (default: 5MB)
	MaxImageSize int64 `env:"UPLOAD_MAX_IMAGE_SIZE" default:"5242880"`
}

// ImageSearchConfig holds the keys for the image search providers.
// Providers without a key are skipped by the aggregator.
type ImageSearchConfig struct {
	UnsplashKey string `env:"UNSPLASH_ACCESS_KEY"`
	PexelsKey   string `env:"PEXELS_API_KEY"`
	PixabayKey  string `env:"PIXABAY_API_KEY"`

	// PerProvider is how many results to request per provider (default: 12)
	PerProvider int `env:"IMAGE_SEARCH_PER_PROVIDER" default:"12"`

	// Timeout bounds each provider call (default: 10s)
	Timeout time.Duration `env:"IMAGE_SEARCH_TIMEOUT" default:"10s"`
}

// BlobConfig holds S3 settings for stored images.
type BlobConfig struct {
	// Bucket is the S3 bucket for uploaded images; uploads are disabled
	// when empty
	Bucket string `env:"BLOB_BUCKET"`

	// Region is the bucket's AWS region (default: us-east-1)
	Region string `env:"BLOB_REGION" default:"us-east-1"`

	// Prefix namespaces uploaded objects (default: vision-board)
	Prefix string `env:"BLOB_PREFIX" default:"vision-board"`
}

// BudgetConfig holds planning totals surfaced on the dashboard.
type BudgetConfig struct {
	// Total is the overall wedding budget (default: 80000)
	Total float64 `env:"BUDGET_TOTAL" default:"80000"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + strconv.Itoa(c.Port)
	}
	return c.Host + ":" + strconv.Itoa(c.Port)
}
