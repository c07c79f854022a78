package ratelimiter

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"time"
)

// fixedWindowLimiter counts hits per key in a redis-backed fixed window.
// All instances share the window because the counter lives in redis.
type fixedWindowLimiter struct {
	redisRepo contracts.RedisRepository
	group     string
	max       int64
	window    time.Duration
}

func NewFixedWindowLimiter(repo contracts.RedisRepository, group string, max int64, window time.Duration) contracts.RateLimiterService {
	return &fixedWindowLimiter{
		redisRepo: repo,
		group:     group,
		max:       max,
		window:    window,
	}
}

func (l *fixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	counterKey := fmt.Sprintf(constvars.RateLimitKeyFormat, l.group, key)
	count, err := l.redisRepo.Increment(ctx, counterKey, l.window)
	if err != nil {
		return false, err
	}
	return count <= l.max, nil
}
