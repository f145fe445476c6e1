package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/repository"
)

// CustomerHandler serves CRUD endpoints for customers.
type CustomerHandler struct {
	Customers *repository.CustomerRepo
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(customers *repository.CustomerRepo) *CustomerHandler {
	if customers == nil {
		panic("nil repository passed to NewCustomerHandler")
	}
	return &CustomerHandler{Customers: customers}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var in model.CustomerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateCustomer(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cust := &model.Customer{Name: in.Name, Phone: in.Phone, IsGold: in.IsGold}
	if err := h.Customers.Create(c.Request().Context(), cust); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer with given id not found"})
	}
	var in model.CustomerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateCustomer(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cust := &model.Customer{ID: id, Name: in.Name, Phone: in.Phone, IsGold: in.IsGold}
	if err := h.Customers.Update(c.Request().Context(), cust); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.Customers.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, customers)
}

// GetByID handles GET /api/customers/:id.
func (h *CustomerHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer with given id not found"})
	}
	cust, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer with given id not found"})
	}
	cust, err := h.Customers.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, cust)
}
