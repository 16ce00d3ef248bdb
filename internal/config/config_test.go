package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "AUTH_TOKEN_TTL_HOURS", "CORS_ALLOW_METHODS", "POSTGRES_MAX_CONNS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "5000" {
		t.Fatalf("port = %q, want 5000", cfg.App.Port)
	}
	if got := cfg.Auth.TokenTTL(); got != 168*time.Hour {
		t.Fatalf("token ttl = %v, want 168h", got)
	}
	if cfg.CORS.AllowMethods != "GET,POST,PATCH" {
		t.Fatalf("cors methods = %q", cfg.CORS.AllowMethods)
	}
	if cfg.Postgres.MaxConns != 10 {
		t.Fatalf("max conns = %d, want 10", cfg.Postgres.MaxConns)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "24")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://trips.example.com")
	t.Setenv("POSTGRES_MAX_CONNS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "8081" {
		t.Fatalf("port = %q, want 8081", cfg.App.Port)
	}
	if got := cfg.Auth.TokenTTL(); got != 24*time.Hour {
		t.Fatalf("token ttl = %v, want 24h", got)
	}
	if cfg.CORS.AllowOrigin != "https://trips.example.com" {
		t.Fatalf("cors origin = %q", cfg.CORS.AllowOrigin)
	}
	// unparsable ints fall back to the default
	if cfg.Postgres.MaxConns != 10 {
		t.Fatalf("max conns = %d, want fallback 10", cfg.Postgres.MaxConns)
	}
}

func TestAddr(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "5000"}
	if got := app.Addr(); got != "127.0.0.1:5000" {
		t.Fatalf("addr = %q", got)
	}
}
