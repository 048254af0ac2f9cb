package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/reclaimhq/reclaim/internal/config"
)

const keyPublicSubmit = "public:submit:%s:%s"

// PublicLimiter throttles unauthenticated submission endpoints per
// client IP. A nil limiter means rate limiting is disabled and every
// request passes.
type PublicLimiter struct {
	enabled bool

	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewPublicLimiter(cfg config.Config) (*PublicLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.PublicRate <= 0 || limitCfg.PublicBurst <= 0 {
		return nil, errors.New("public rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	return &PublicLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    limitCfg.PublicRate,
		burst:   limitCfg.PublicBurst,
	}, nil
}

func (l *PublicLimiter) Enabled() bool {
	return l != nil && l.enabled
}

// Allow checks the bucket for one submission from the given client on
// the given endpoint.
func (l *PublicLimiter) Allow(ctx context.Context, endpoint, clientIP string) (bool, time.Duration, error) {
	if !l.Enabled() {
		return true, 0, nil
	}

	key := fmt.Sprintf(keyPublicSubmit, strings.TrimSpace(endpoint), strings.TrimSpace(clientIP))
	result, err := l.bucket.Allow(ctx, key, l.rate, l.burst)
	if err != nil {
		return false, 0, err
	}
	return result.Allowed, result.RetryAfter, nil
}
