package config

import (
	"testing"
	"time"

	"roomprice/internal/pricing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.Rounding != pricing.HalfEven {
		t.Errorf("Rounding = %s, want half_even", cfg.Rounding)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %s, want 1m", cfg.RateLimitWindow)
	}
	if cfg.BotEnabled() || cfg.RateLimitEnabled() {
		t.Error("bot and rate limiting must be off without their settings")
	}
	if cfg.TrustProxy {
		t.Error("proxy headers must not be trusted by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("PRICE_ROUNDING", "half_up")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.Rounding != pricing.HalfUp {
		t.Errorf("Rounding = %s, want half_up", cfg.Rounding)
	}
	if !cfg.BotEnabled() || !cfg.RateLimitEnabled() {
		t.Error("bot and rate limiting should be enabled")
	}
	if cfg.RateLimit != 5 || cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("rate limit = %d per %s", cfg.RateLimit, cfg.RateLimitWindow)
	}
	if !cfg.TrustProxy {
		t.Error("TRUST_PROXY_HEADERS not applied")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown rounding", map[string]string{"PRICE_ROUNDING": "ceil"}},
		{"bad duration", map[string]string{"HTTP_READ_TIMEOUT": "soon"}},
		{"zero limit", map[string]string{"REDIS_ADDR": "localhost:6379", "RATE_LIMIT": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
