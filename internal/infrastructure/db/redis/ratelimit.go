package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts attempts per key inside fixed time windows.
// Key format: ratelimit:login:<key>:<window_bucket>
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit attempts per window.
func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether the caller identified by key may attempt again.
// The first attempt in a window sets the key's expiry so stale counters
// clean themselves up.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.key(key, time.Now())

	n, err := l.client.Incr(ctx, bucket).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, bucket, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.limit), nil
}

func (l *FixedWindowLimiter) key(key string, now time.Time) string {
	return fmt.Sprintf("ratelimit:login:%s:%d", key, now.Unix()/int64(l.window.Seconds()))
}
