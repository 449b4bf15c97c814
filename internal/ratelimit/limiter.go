// Package ratelimit counts requests per key in fixed windows.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"roomprice/pkg/redis"
)

type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}

var _ Counter = (*redis.Client)(nil)

// Limiter allows at most limit hits per key within window.
type Limiter struct {
	counter Counter
	scope   string
	limit   int64
	window  time.Duration
}

func New(counter Counter, scope string, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		counter: counter,
		scope:   scope,
		limit:   limit,
		window:  window,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
// A nil Limiter allows everything.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil {
		return true, nil
	}

	redisKey := fmt.Sprintf("ratelimit:%s:%s", l.scope, key)

	count, err := l.counter.Incr(ctx, redisKey)
	if err != nil {
		return true, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// First hit opens the window
	if count == 1 {
		if _, err := l.counter.Expire(ctx, redisKey, l.window); err != nil {
			return true, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= l.limit, nil
}
