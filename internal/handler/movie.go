package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/repository"
)

// MovieHandler serves CRUD endpoints for movies. Create and Update
// resolve the referenced genre and embed its snapshot; a dangling
// genreId is a client error, not a missing resource.
type MovieHandler struct {
	Movies *repository.MovieRepo
	Genres *repository.GenreRepo
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(movies *repository.MovieRepo, genres *repository.GenreRepo) *MovieHandler {
	if movies == nil || genres == nil {
		panic("nil repository passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies, Genres: genres}
}

// resolveGenre validates the genre reference from the input and
// returns the snapshot to embed.
func (h *MovieHandler) resolveGenre(c echo.Context, genreID string) (*model.Genre, error) {
	g, err := h.Genres.GetByID(c.Request().Context(), genreID)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre"})
		}
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return g, nil
}

// Create handles POST /api/movies.
func (h *MovieHandler) Create(c echo.Context) error {
	var in model.MovieInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateMovie(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	genre, err := h.resolveGenre(c, in.GenreID)
	if genre == nil {
		return err
	}
	m := &model.Movie{
		Title:           strings.TrimSpace(in.Title),
		Genre:           *genre,
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
	}
	if err := h.Movies.Create(c.Request().Context(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}

// Update handles PUT /api/movies/:id.
func (h *MovieHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie with given id not found"})
	}
	var in model.MovieInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := model.ValidateMovie(in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	genre, err := h.resolveGenre(c, in.GenreID)
	if genre == nil {
		return err
	}
	m := &model.Movie{
		ID:              id,
		Title:           strings.TrimSpace(in.Title),
		Genre:           *genre,
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
	}
	if err := h.Movies.Update(c.Request().Context(), m); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}

// List handles GET /api/movies.
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.Movies.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, movies)
}

// GetByID handles GET /api/movies/:id.
func (h *MovieHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie with given id not found"})
	}
	m, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/movies/:id.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie with given id not found"})
	}
	m, err := h.Movies.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie with given id not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}
