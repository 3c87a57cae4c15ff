package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies the long timeout to AI and export routes
// and the default timeout everywhere else
func SelectiveTimeoutConfig(defaultTimeout, longTimeout time.Duration) echo.MiddlewareFunc {
	defaultHandler := TimeoutConfig(defaultTimeout)
	longHandler := TimeoutConfig(longTimeout)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.Contains(path, "/ai/") || strings.HasSuffix(path, "/export") {
				return longHandler(next)(c)
			}
			return defaultHandler(next)(c)
		}
	}
}
