package config

import (
	"testing"
	"time"
)

// validConfig returns a configuration that passes Validate.
func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			DSN:      "postgres://localhost:5432/panacureo",
			MaxConns: 25,
			MinConns: 5,
		},
		Auth: AuthConfig{
			JWTSecret:        "0123456789abcdef0123456789abcdef",
			JWTIssuer:        "panacureo",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  720 * time.Hour,
			PasswordHashCost: 10,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "short jwt secret",
			mutate: func(c *Config) { c.Auth.JWTSecret = "too-short" },
		},
		{
			name:   "zero access ttl",
			mutate: func(c *Config) { c.Auth.AccessTokenTTL = 0 },
		},
		{
			name:   "refresh ttl not exceeding access ttl",
			mutate: func(c *Config) { c.Auth.RefreshTokenTTL = c.Auth.AccessTokenTTL },
		},
		{
			name:   "hash cost below bcrypt minimum",
			mutate: func(c *Config) { c.Auth.PasswordHashCost = 1 },
		},
		{
			name:   "hash cost above bcrypt maximum",
			mutate: func(c *Config) { c.Auth.PasswordHashCost = 40 },
		},
		{
			name:   "invalid port",
			mutate: func(c *Config) { c.Server.Port = 0 },
		},
		{
			name:   "min conns above max conns",
			mutate: func(c *Config) { c.Database.MinConns = 100 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("Validate: expected error, got nil")
			}
		})
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/panacureo")
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.JWTIssuer != "panacureo" {
		t.Errorf("Auth.JWTIssuer default: got %q, want panacureo", cfg.Auth.JWTIssuer)
	}
	if cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("Auth.AccessTokenTTL default: got %v, want 15m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.PasswordHashCost != 10 {
		t.Errorf("Auth.PasswordHashCost default: got %d, want 10", cfg.Auth.PasswordHashCost)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/panacureo")
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	if _, err := Load(); err == nil {
		t.Error("Load: expected error for missing explicit config file")
	}
}
