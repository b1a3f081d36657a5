package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/chanakya-dev/campustore/internal/errs"
	"github.com/chanakya-dev/campustore/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// rateLimitWindow is the fixed window the request cap applies to.
// The configured limit is "requests per minute".
const rateLimitWindow = time.Minute

// HitCounter counts requests per key within a fixed window. The Redis
// implementation is used in production; tests substitute a fake.
type HitCounter interface {
	// Incr increments the counter for key and returns the new count.
	// The first increment in a window arms the window's expiry.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// redisCounter implements HitCounter with INCR + EXPIRE.
type redisCounter struct {
	client *redis.Client
}

func (rc *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := rc.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		// New window: arm the expiry. If this EXPIRE is lost the key
		// would live forever, so failures surface as errors.
		if err := rc.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// RateLimitMiddleware enforces a per-IP, per-route request cap using a
// fixed window counter in Redis.
type RateLimitMiddleware struct {
	server  *server.Server
	counter HitCounter
}

// NewRateLimitMiddleware constructs the rate limiter backed by the
// application's Redis client.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server:  s,
		counter: &redisCounter{client: s.Redis},
	}
}

// Limit returns the Echo middleware. A limit of zero disables it.
//
// The limiter fails open: when Redis is unreachable, requests pass.
// Protecting availability matters more here than enforcing the cap.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	limit := int64(r.server.Config.Server.RateLimitPerMinute)
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("ratelimit:%s:%s", c.RealIP(), c.Path())

			count, err := r.counter.Incr(c.Request().Context(), key, rateLimitWindow)
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limit counter unavailable, allowing request")
				return next(c)
			}

			if count > limit {
				r.RecordRateLimitHit(c.Path())
				return errs.NewTooManyRequestsError("Rate limit exceeded, try again later")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit records a New Relic custom event for a rejected
// request, so limit pressure is visible per endpoint.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
