package middleware

import (
	"log/slog"
	"math"
	"strconv"

	"billing/internal/delivery/api/response"
	deliverycontext "billing/internal/delivery/context"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles callers per client IP and route.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
	}
}

// Handle takes one token for the caller. Limiter errors let the request through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := c.RealIP() + ":" + c.Path()

		decision, err := m.limiter.Allow(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, allowing request",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		c.Response().Header().Set(headerRateLimitRemaining, strconv.FormatInt(decision.Remaining, 10))
		if !decision.Allowed {
			retryAfter := int64(math.Ceil(decision.RetryAfter.Seconds()))
			c.Response().Header().Set(headerRetryAfter, strconv.FormatInt(max(retryAfter, 1), 10))

			return response.HandleAppError(c, domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}
