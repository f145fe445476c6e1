package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentora/video-store/internal/middleware"
	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/utils"
)

func TestUserRegister(t *testing.T) {
	s := newTestServer(t)

	t.Run("password too short", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/users", "", model.UserInput{
			Name: "John", Email: "john@example.com", Password: "short",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/users", "", model.UserInput{
			Name: "John", Email: "john@example.com", Password: "password1",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		// the issued token rides back on the response header and must
		// open protected routes straight away
		token := rec.Header().Get(middleware.TokenHeader)
		require.NotEmpty(t, token)

		var got struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		decode(t, rec, &got)
		assert.Equal(t, "john@example.com", got.Email)
		assert.NotContains(t, rec.Body.String(), "password")

		rec = s.request(t, http.MethodPost, "/api/genres", token, model.GenreInput{Name: "Action"})
		assert.Equal(t, http.StatusOK, rec.Code)

		claims, err := utils.ParseAccessToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, got.ID, claims.UserID)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/users", "", model.UserInput{
			Name: "John Again", Email: "John@Example.com", Password: "password1",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "already registered")
	})
}

func TestAuthLogin(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(t, http.MethodPost, "/api/users", "", model.UserInput{
		Name: "John", Email: "john@example.com", Password: "password1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("unknown email", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/auth", "", model.CredentialsInput{
			Email: "nobody@example.com", Password: "password1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/auth", "", model.CredentialsInput{
			Email: "john@example.com", Password: "password2",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/api/auth", "", model.CredentialsInput{
			Email: "john@example.com", Password: "password1",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Token string `json:"token"`
		}
		decode(t, rec, &got)

		claims, err := utils.ParseAccessToken(testSecret, got.Token)
		require.NoError(t, err)
		assert.False(t, claims.IsAdmin)
	})
}
