package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/repository"
	"github.com/rentora/video-store/internal/service"
)

// ReturnHandler serves the return endpoint, the second step of the
// rental lifecycle.
type ReturnHandler struct {
	Service *service.RentalService
}

// NewReturnHandler constructs a ReturnHandler.
func NewReturnHandler(svc *service.RentalService) *ReturnHandler {
	if svc == nil {
		panic("nil service passed to NewReturnHandler")
	}
	return &ReturnHandler{Service: svc}
}

// Create handles POST /api/returns. Returns are not idempotent: a
// second return of the same rental is rejected with 400, and a pair
// with no rental at all yields 404.
func (h *ReturnHandler) Create(c echo.Context) error {
	var in model.RentalInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateRental(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	rental, err := h.Service.Return(c.Request().Context(), in.CustomerID, in.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRentalNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "rental not found"})
		case errors.Is(err, service.ErrAlreadyReturned):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "rental already processed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, rental)
}
