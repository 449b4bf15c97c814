package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// COUNTERS FOR THE RATE LIMITER

type Client struct {
	client *redis.Client
}

// New creates a new Redis client
func New(addr, password string, db int) *Client {
	return &Client{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     20,
			MinIdleConns: 2,
		}),
	}
}

// Connect pings the server until it answers or maxWait elapses
func (c *Client) Connect(ctx context.Context, maxWait time.Duration, notify backoff.Notify) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxWait
	policy.MaxInterval = 5 * time.Second

	err := backoff.RetryNotify(
		func() error {
			return c.client.Ping(ctx).Err()
		},
		backoff.WithContext(policy, ctx),
		notify,
	)
	if err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Incr increments the key's value by 1. Returns the new value and any error
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

// Expire sets a key's time to live (TTL)
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return c.client.Expire(ctx, key, expiration).Result()
}

// Close closes the Redis connection
func (c *Client) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}
