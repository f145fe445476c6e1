package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/repository"
)

// GenreHandler serves CRUD endpoints for genres.
type GenreHandler struct {
	Genres *repository.GenreRepo
}

// NewGenreHandler constructs a GenreHandler.
func NewGenreHandler(genres *repository.GenreRepo) *GenreHandler {
	if genres == nil {
		panic("nil repository passed to NewGenreHandler")
	}
	return &GenreHandler{Genres: genres}
}

// Create handles POST /api/genres.
func (h *GenreHandler) Create(c echo.Context) error {
	var in model.GenreInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateGenre(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	g := &model.Genre{Name: in.Name}
	if err := h.Genres.Create(c.Request().Context(), g); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, g)
}

// Update handles PUT /api/genres/:id.
func (h *GenreHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre with given id not found"})
	}
	var in model.GenreInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateGenre(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	g := &model.Genre{ID: id, Name: in.Name}
	if err := h.Genres.Update(c.Request().Context(), g); err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, g)
}

// List handles GET /api/genres.
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.Genres.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, genres)
}

// GetByID handles GET /api/genres/:id.
func (h *GenreHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre with given id not found"})
	}
	g, err := h.Genres.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, g)
}

// Delete handles DELETE /api/genres/:id. It echoes the deleted
// record back, matching the other delete endpoints.
func (h *GenreHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre with given id not found"})
	}
	g, err := h.Genres.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, g)
}
