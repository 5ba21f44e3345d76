package middleware

import (
	"github.com/labstack/echo/v4"

	"gomarket/internal/infrastructure/ratelimit"
	"gomarket/pkg/errors"
	"gomarket/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the named action per authenticated user. Runs after
// Authenticate so the uid is present.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, _ := c.Get("uid").(string)
			if uid == "" {
				return next(c)
			}

			allowed, _ := m.limiter.Allow(uid, action)
			if !allowed {
				return response.Error(c, errors.TooManyRequests("Too many requests, slow down"))
			}

			return next(c)
		}
	}
}
