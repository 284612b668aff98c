package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs HTTP requests with the matched route template.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = req.RequestURI
			}

			log.Printf("[%s] %s %s - %d (%s)",
				req.Method,
				route,
				c.RealIP(),
				res.Status,
				time.Since(start),
			)

			return err
		}
	}
}
