package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs one structured line per request: method, path,
// status, client IP and latency. Server errors log at error level,
// client errors at warn.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			var event *zerolog.Event
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}
			event.
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", status).
				Str("client_ip", c.RealIP()).
				Dur("latency", time.Since(start)).
				Msg("request")
			return nil
		}
	}
}

// Recover catches panics raised while handling a request, logs the
// detail and answers with a generic 500. Internal detail is logged,
// never exposed to the client.
func Recover() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Interface("panic", r).
						Str("method", c.Request().Method).
						Str("path", c.Request().URL.Path).
						Msg("panic recovered")
					err = c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
				}
			}()
			return next(c)
		}
	}
}
