package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"roomprice/internal/bot"
	"roomprice/internal/config"
	"roomprice/internal/pricing"
	"roomprice/internal/ratelimit"
	"roomprice/internal/web"
	"roomprice/pkg/logger"
	"roomprice/pkg/redis"
)

// ENTRY POINT

func main() {
	os.Exit(start())
}

// start returns the process exit code. Deferred cleanup runs before main
// exits.
func start() int {
	// Optional .env, real environment wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Error("Service stopped with error", zap.Error(err))
		return 1
	}

	zapLogger.Info("Service shutdown gracefully")
	return 0
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	deriver := pricing.Deriver{Rounding: cfg.Rounding}
	zapLogger.Info("Price deriver ready",
		zap.String("rounding", cfg.Rounding.String()),
		zap.Int("room_types", pricing.RoomCount()))

	var httpLimiter, botLimiter *ratelimit.Limiter
	if cfg.RateLimitEnabled() {
		redisClient := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer redisClient.Close()

		zapLogger.Info("Connecting to Redis...", zap.String("addr", cfg.RedisAddr))
		err := redisClient.Connect(ctx, time.Minute, func(err error, next time.Duration) {
			zapLogger.Warn("Redis connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		})
		if err != nil {
			return fmt.Errorf("init rate limiter: %w", err)
		}

		httpLimiter = ratelimit.New(redisClient, "http", cfg.RateLimit, cfg.RateLimitWindow)
		botLimiter = ratelimit.New(redisClient, "bot", cfg.RateLimit, cfg.RateLimitWindow)
	}

	server, err := web.New(deriver, httpLimiter, cfg.TrustProxy, zapLogger)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(gctx, cfg.HTTPAddr, cfg.HTTPReadTimeout, cfg.HTTPWriteTimeout, cfg.ShutdownTimeout)
	})

	if cfg.BotEnabled() {
		g.Go(func() error {
			tgBot, err := bot.New(gctx, cfg.TelegramToken, cfg.TelegramDebug, deriver, botLimiter, zapLogger)
			if err != nil {
				return err
			}
			return tgBot.Start(gctx)
		})
	} else {
		zapLogger.Info("TELEGRAM_TOKEN not set, bot disabled")
	}

	return g.Wait()
}
