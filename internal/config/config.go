package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"

	"roomprice/internal/pricing"
)

type Config struct {
	HTTPAddr         string               `env:"HTTP_ADDR" envDefault:":8080"`
	HTTPReadTimeout  time.Duration        `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	HTTPWriteTimeout time.Duration        `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout  time.Duration        `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	TrustProxy       bool                 `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	Rounding         pricing.RoundingMode `env:"PRICE_ROUNDING" envDefault:"half_even"`
	TelegramToken    string               `env:"TELEGRAM_TOKEN"`
	TelegramDebug    bool                 `env:"TELEGRAM_DEBUG" envDefault:"false"`
	RedisAddr        string               `env:"REDIS_ADDR"`
	RedisPassword    string               `env:"REDIS_PASSWORD"`
	RedisDB          int                  `env:"REDIS_DB" envDefault:"0"`
	RateLimit        int64                `env:"RATE_LIMIT" envDefault:"60"`
	RateLimitWindow  time.Duration        `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	LogLevel         string               `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment   bool                 `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.RedisAddr != "" {
		if cfg.RateLimit <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
		}
		if cfg.RateLimitWindow <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
		}
	}

	return &cfg, nil
}

// RateLimitEnabled reports whether a Redis server is configured for counters.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddr != ""
}

// BotEnabled reports whether the Telegram front end should start.
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}
