// Package handler implements the HTTP endpoints. Handlers bind and
// validate request bodies, call repositories or the rental service,
// and map outcomes to status codes. Authentication and authorization
// are applied by middleware before any handler runs.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Health reports liveness for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// pathID extracts the :id path parameter. All identifiers are
// store-generated UUIDs, so a syntactically invalid id can never
// match a record and is reported as not-found rather than a bad
// request.
func pathID(c echo.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}
