package config

import (
	"strings"
	"testing"
	"time"
)

// setRequired sets the env vars without which Load fails outright.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/wedding")
	t.Setenv("AUTH_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.MaxConns != 20 {
		t.Errorf("Database.MaxConns = %d, want 20", cfg.Database.MaxConns)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Upload.MaxImageSize != 5*1024*1024 {
		t.Errorf("Upload.MaxImageSize = %d, want 5MB", cfg.Upload.MaxImageSize)
	}
	if cfg.Budget.Total != 80000 {
		t.Errorf("Budget.Total = %v, want 80000", cfg.Budget.Total)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL", "1h")
	t.Setenv("BUDGET_TOTAL", "125000.50")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 1h", cfg.Auth.TokenTTL)
	}
	if cfg.Budget.Total != 125000.50 {
		t.Errorf("Budget.Total = %v, want 125000.50", cfg.Budget.Total)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_SECRET", "x")

	if _, err := Load(); err == nil {
		t.Error("Load() succeeded without DATABASE_URL")
	}
}

func TestLoadDatabaseURLAlternate(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "postgres://localhost:5432/wedding")
	t.Setenv("AUTH_SECRET", "x")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.URL != "postgres://localhost:5432/wedding" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "SERVER_PORT", "not-a-number"},
		{"port out of range", "SERVER_PORT", "99999"},
		{"bad duration", "AUTH_TOKEN_TTL", "soon"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad log format", "LOG_FORMAT", "xml"},
		{"negative budget", "BUDGET_TOTAL", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() succeeded with %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoadBootstrapPairing(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTH_BOOTSTRAP_USERNAME", "admin")

	if _, err := Load(); err == nil {
		t.Error("Load() succeeded with a bootstrap username but no password")
	}

	t.Setenv("AUTH_BOOTSTRAP_PASSWORD", "changeme")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.BootstrapName != "Planner" {
		t.Errorf("Auth.BootstrapName = %q, want Planner", cfg.Auth.BootstrapName)
	}
}

func TestConfigStringMasksSecrets(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := cfg.String()
	if strings.Contains(s, "postgres://") || strings.Contains(s, "test-secret") {
		t.Errorf("String() leaks secrets: %s", s)
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9090, ":9090"},
		{"localhost", 80, "localhost:80"},
	}

	for _, tt := range tests {
		c := ServerConfig{Host: tt.host, Port: tt.port}
		if got := c.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}
