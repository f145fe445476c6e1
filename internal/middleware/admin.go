package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin enforces that the authenticated user carries the
// admin flag. It assumes JWTAuth already ran and stored the flag in
// the context; a missing or false flag yields 403. 401 means no
// valid token, 403 means a valid token without the privilege.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, ok := c.Get(ContextIsAdmin).(bool)
			if !ok || !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
			}
			return next(c)
		}
	}
}
