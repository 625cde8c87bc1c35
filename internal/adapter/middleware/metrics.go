package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
}

// Metrics reports every request by route template, so /metrics cardinality
// stays bounded. Unrouted requests are reported as "unmatched".
func Metrics(obs HTTPObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status, path := c.Response().Status, c.Path()
			if err != nil {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			if path == "" || errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
				path = "unmatched"
			}
			obs.ObserveHTTP(c.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}
