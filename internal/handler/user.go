package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/config"
	"github.com/rentora/video-store/internal/middleware"
	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/repository"
	"github.com/rentora/video-store/internal/utils"
)

// UserHandler serves user registration. Accounts exist only for
// authentication; admin flags are set out of band, never through
// this endpoint.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(cfg config.Config, users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Cfg: cfg, Users: users}
}

// Register handles POST /api/users. On success the signed token is
// returned in the body and mirrored in the x-auth-token response
// header so clients are logged in immediately.
func (h *UserHandler) Register(c echo.Context) error {
	var in model.UserInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateUser(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, in.Name, in.Email, in.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "user already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.IsAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	c.Response().Header().Set(middleware.TokenHeader, token)
	return c.JSON(http.StatusOK, echo.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"token": token,
	})
}
