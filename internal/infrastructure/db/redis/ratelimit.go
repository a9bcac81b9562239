package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWindow = time.Minute
	defaultMax    = 5
)

// RateLimiter is a fixed-window counter backed by Redis.
// Key format: rate:<key>; the counter expires with the window.
type RateLimiter struct {
	client *redis.Client
	window time.Duration
	max    int64
}

// NewRateLimiter creates a RateLimiter allowing max requests per window.
// Non-positive arguments fall back to 5 per minute.
func NewRateLimiter(client *redis.Client, max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = defaultMax
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{client: client, window: window, max: int64(max)}
}

// Allow increments the caller's window counter and reports whether the caller
// is still under the limit.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := "rate:" + key

	n, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return false, fmt.Errorf("rate incr: %w", err)
	}
	if n == 1 {
		// First hit in the window starts the clock.
		if err := l.client.Expire(ctx, rkey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate expire: %w", err)
		}
	}
	return n <= l.max, nil
}
