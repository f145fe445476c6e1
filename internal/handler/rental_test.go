package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/video-store/internal/model"
)

func TestRentalCheckout(t *testing.T) {
	s := newTestServer(t)
	m := seedMovie(t, s, 2)
	c := seedCustomer(t, s)

	t.Run("no token", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/rentals", "", model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing movie id", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/rentals", userToken(t), model.RentalInput{CustomerID: c.ID})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown movie", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/rentals", userToken(t), model.RentalInput{
			CustomerID: c.ID,
			MovieID:    "b2f7a8f0-0000-0000-0000-000000000000",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/rentals", userToken(t), model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Rental
		decode(t, rec, &got)
		assert.Equal(t, m.ID, got.Movie.ID)
		assert.Equal(t, m.Title, got.Movie.Title)
		assert.Equal(t, c.Name, got.Customer.Name)
		assert.False(t, got.DateOut.IsZero())
		assert.Nil(t, got.DateReturned)
		assert.Nil(t, got.RentalFee)

		stored, err := s.movies.GetByID(t.Context(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.NumberInStock)
	})

	t.Run("out of stock", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/rentals", userToken(t), model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.request(t, http.MethodPost, "/api/rentals", userToken(t), model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "not in stock")
	})
}

func TestRentalList(t *testing.T) {
	s := newTestServer(t)
	m := seedMovie(t, s, 5)
	c := seedCustomer(t, s)

	rec := s.request(t, http.MethodGet, "/api/rentals", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.request(t, http.MethodPost, "/api/rentals", userToken(t), model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(t, http.MethodGet, "/api/rentals", userToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Rental
	decode(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, m.ID, got[0].Movie.ID)
}

func TestReturnFlow(t *testing.T) {
	s := newTestServer(t)
	m := seedMovie(t, s, 1)
	c := seedCustomer(t, s)

	rec := s.request(t, http.MethodPost, "/api/rentals", userToken(t), model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("no token", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/returns", "", model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing customer id", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/returns", userToken(t), model.RentalInput{MovieID: m.ID})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no matching rental", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/returns", userToken(t), model.RentalInput{
			CustomerID: c.ID,
			MovieID:    "b2f7a8f0-0000-0000-0000-000000000000",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/returns", userToken(t), model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
		require.Equal(t, http.StatusOK, rec.Code)

		var got model.Rental
		decode(t, rec, &got)
		require.NotNil(t, got.DateReturned)
		require.NotNil(t, got.RentalFee)
		assert.Equal(t, 0.0, *got.RentalFee)

		stored, err := s.movies.GetByID(t.Context(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.NumberInStock)
	})

	t.Run("already processed", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/returns", userToken(t), model.RentalInput{CustomerID: c.ID, MovieID: m.ID})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "already processed")
	})
}
