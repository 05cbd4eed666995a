package service

import (
	"context"
	"time"
)

// RateLimitDecision is the outcome of taking one token from a bucket.
type RateLimitDecision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// RateLimiter guards endpoints against bursts, keyed by an opaque caller key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*RateLimitDecision, error)
}
