// Package middleware contains reusable HTTP middleware: the token
// authentication gate, the admin authorization gate, a redis-backed
// rate limiter and request logging/recovery. The two access control
// gates are orthogonal and always run in order, authentication
// before authorization.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/utils"
)

// TokenHeader carries the signed access token on every protected
// request.
const TokenHeader = "x-auth-token"

// Context keys populated by JWTAuth for downstream consumers.
const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

// JWTAuth returns a middleware that validates the x-auth-token
// header and injects the token's subject and admin flag into the
// request context. A missing token and an invalid one both yield
// 401; only their messages differ.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(TokenHeader)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied, no token provided"})
			}
			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextIsAdmin, claims.IsAdmin)
			return next(c)
		}
	}
}
