// Package ratelimit implements a Redis token bucket shared by every API instance.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"billing/config"
	"billing/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// tokenBucketScript refills and takes one token atomically.
// It returns {allowed, remaining, retry_after_ms}.
//
//nolint:gochecknoglobals
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type redisLimiter struct {
	rdb            redis.Scripter
	prefix         string
	capacity       int64
	refillTokens   int64
	refillInterval time.Duration
	ttl            time.Duration
	now            func() time.Time
}

// allowAll is used when rate limiting is disabled.
type allowAll struct{}

func (allowAll) Allow(context.Context, string) (*service.RateLimitDecision, error) {
	return &service.RateLimitDecision{Allowed: true, Remaining: -1}, nil
}

// Params holds the dependencies of the limiter, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter returns the Redis limiter when rateLimit.enabled is set, otherwise a limiter that allows everything.
func NewRateLimiter(params Params) service.RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return allowAll{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Unreachable Redis is not fatal, requests fail open.
			if err := rdb.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis unreachable, rate limiting fails open",
					slog.String("addr", cfg.Redis.Addr),
					slog.String("error", err.Error()),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return newRedisLimiter(rdb, cfg)
}

func newRedisLimiter(rdb redis.Scripter, cfg *config.RateLimitConfig) *redisLimiter {
	limiter := &redisLimiter{
		rdb:            rdb,
		prefix:         cfg.Prefix,
		capacity:       cfg.Capacity,
		refillTokens:   cfg.RefillTokens,
		refillInterval: cfg.RefillInterval,
		ttl:            cfg.TTL,
		now:            time.Now,
	}
	if limiter.capacity <= 0 {
		limiter.capacity = 10
	}
	if limiter.ttl < time.Second {
		limiter.ttl = 10 * time.Minute
	}
	if limiter.prefix == "" {
		limiter.prefix = "ratelimit"
	}

	return limiter
}

// Allow takes one token from the bucket of key.
func (l *redisLimiter) Allow(ctx context.Context, key string) (*service.RateLimitDecision, error) {
	args := []any{
		l.now().UnixMilli(),
		l.capacity,
		l.refillTokens,
		l.refillInterval.Milliseconds(),
		int64(l.ttl / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, args...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "rate limit script failed")
	}

	return parseDecision(vals)
}

func parseDecision(vals any) (*service.RateLimitDecision, error) {
	arr, ok := vals.([]any)
	if !ok || len(arr) != 3 {
		return nil, errors.Errorf("unexpected rate limit result: %#v", vals)
	}

	return &service.RateLimitDecision{
		Allowed:    asInt64(arr[0]) == 1,
		Remaining:  asInt64(arr[1]),
		RetryAfter: time.Duration(asInt64(arr[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	default:
		if n, err := strconv.ParseInt(fmt.Sprint(t), 10, 64); err == nil {
			return n
		}
	}

	return 0
}
