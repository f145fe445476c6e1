package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/repository"
	"github.com/rentora/video-store/internal/service"
)

// RentalHandler serves the checkout endpoint and the rental listing.
type RentalHandler struct {
	Service *service.RentalService
	Rentals *repository.RentalRepo
}

// NewRentalHandler constructs a RentalHandler.
func NewRentalHandler(svc *service.RentalService, rentals *repository.RentalRepo) *RentalHandler {
	if svc == nil || rentals == nil {
		panic("nil dependency passed to NewRentalHandler")
	}
	return &RentalHandler{Service: svc, Rentals: rentals}
}

// Create handles POST /api/rentals. Reference and stock checks run
// before any write; the rental insert and stock decrement are a
// single atomic batch inside the service.
func (h *RentalHandler) Create(c echo.Context) error {
	var in model.RentalInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateRental(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	rental, err := h.Service.Checkout(c.Request().Context(), in.CustomerID, in.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie"})
		case errors.Is(err, repository.ErrCustomerNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer"})
		case errors.Is(err, service.ErrMovieOutOfStock):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie not in stock"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, rental)
}

// List handles GET /api/rentals, newest checkout first.
func (h *RentalHandler) List(c echo.Context) error {
	rentals, err := h.Rentals.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rentals)
}
