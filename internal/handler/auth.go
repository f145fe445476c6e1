package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/config"
	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/repository"
	"github.com/rentora/video-store/internal/utils"
)

// AuthHandler serves login. Unknown emails and wrong passwords
// collapse into the same response so the endpoint leaks nothing
// about which accounts exist.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
	if users == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: users}
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(c echo.Context) error {
	var in model.CredentialsInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateCredentials(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, in.Email)
	if err != nil || !utils.VerifyPassword(u.PasswordHash, in.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email or password"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.IsAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
