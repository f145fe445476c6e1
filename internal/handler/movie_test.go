package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/video-store/internal/model"
)

func TestMovieCreate(t *testing.T) {
	s := newTestServer(t)
	g := seedGenre(t, s, "Action")

	t.Run("unknown genre", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/movies", userToken(t), model.MovieInput{
			Title:   "Terminator",
			GenreID: "b2f7a8f0-0000-0000-0000-000000000000",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stock out of range", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/movies", userToken(t), model.MovieInput{
			Title:         "Terminator",
			GenreID:       g.ID,
			NumberInStock: 51,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/movies", userToken(t), model.MovieInput{
			Title:           "Terminator",
			GenreID:         g.ID,
			NumberInStock:   5,
			DailyRentalRate: 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Movie
		decode(t, rec, &got)
		assert.Equal(t, "Terminator", got.Title)
		assert.Equal(t, *g, got.Genre)
		assert.Equal(t, 5, got.NumberInStock)
	})
}

func TestMovieUpdateReembedsGenre(t *testing.T) {
	s := newTestServer(t)
	action := seedGenre(t, s, "Action")
	comedy := seedGenre(t, s, "Comedy")
	m := seedMovie(t, s, 5)

	rec := s.request(t, http.MethodPut, "/api/movies/"+m.ID, userToken(t), model.MovieInput{
		Title:           m.Title,
		GenreID:         comedy.ID,
		NumberInStock:   m.NumberInStock,
		DailyRentalRate: m.DailyRentalRate,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := s.movies.GetByID(t.Context(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, *comedy, stored.Genre)
	assert.NotEqual(t, action.ID, stored.Genre.ID)
}

func TestMovieDeleteRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	m := seedMovie(t, s, 5)

	rec := s.request(t, http.MethodDelete, "/api/movies/"+m.ID, userToken(t), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.request(t, http.MethodDelete, "/api/movies/"+m.ID, adminToken(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerCreate(t *testing.T) {
	s := newTestServer(t)

	t.Run("phone too short", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/customers", userToken(t), model.CustomerInput{Name: "John", Phone: "1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid gold member", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/customers", userToken(t), model.CustomerInput{
			Name: "John", Phone: "12345", IsGold: true,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Customer
		decode(t, rec, &got)
		assert.True(t, got.IsGold)

		stored, err := s.customers.GetByID(t.Context(), got.ID)
		require.NoError(t, err)
		assert.Equal(t, got, *stored)
	})
}

func TestCustomerGetInvalidID(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(t, http.MethodGet, "/api/customers/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
