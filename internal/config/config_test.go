package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.RetryMaxAttempts != 5 {
		t.Fatalf("unexpected retry attempts: %d", cfg.RetryMaxAttempts)
	}
	if cfg.LockTimeout != 2*time.Second {
		t.Fatalf("unexpected lock timeout: %s", cfg.LockTimeout)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected redis disabled by default, got %q", cfg.RedisAddr)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("RETRY_MAX_ATTEMPTS", "3")
	t.Setenv("PRUNE_QUIESCENCE", "250ms")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Fatalf("unexpected database url: %s", cfg.DatabaseURL)
	}
	if cfg.RetryMaxAttempts != 3 {
		t.Fatalf("unexpected retry attempts: %d", cfg.RetryMaxAttempts)
	}
	if cfg.PruneQuiescence != 250*time.Millisecond {
		t.Fatalf("unexpected quiescence: %s", cfg.PruneQuiescence)
	}
}
