package ratelimit

import (
	"context"
	"time"

	"github.com/muhammadheryan/marketplace/repository/redis"
)

// RateLimiter is a fixed-window counter keyed by caller-chosen strings.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error)
}

type limiter struct {
	store redis.Repository
}

func NewRateLimiter(store redis.Repository) RateLimiter {
	return &limiter{store: store}
}

func (l *limiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}
	count, err := l.store.IncrWithTTL(ctx, "ratelimit:"+key, window)
	if err != nil {
		return false, err
	}
	return count <= limit, nil
}
