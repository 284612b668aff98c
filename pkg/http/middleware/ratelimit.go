package middleware

import (
	"net/http"

	"PortView/pkg/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimit applies a per-client-IP token bucket.
func RateLimit(capacity, refillPerSec float64) echo.MiddlewareFunc {
	limiter := ratelimit.New()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP(), capacity, refillPerSec) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"status":  http.StatusTooManyRequests,
					"message": "Too Many Requests",
				})
			}
			return next(c)
		}
	}
}
