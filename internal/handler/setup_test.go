package handler_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rentora/video-store/internal/config"
	"github.com/rentora/video-store/internal/handler"
	"github.com/rentora/video-store/internal/middleware"
	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/repository"
	"github.com/rentora/video-store/internal/router"
	"github.com/rentora/video-store/internal/service"
	"github.com/rentora/video-store/internal/testutil"
	"github.com/rentora/video-store/internal/utils"
)

const testSecret = "test-secret"

type testServer struct {
	e         *echo.Echo
	db        *sql.DB
	genres    *repository.GenreRepo
	customers *repository.CustomerRepo
	movies    *repository.MovieRepo
	rentals   *repository.RentalRepo
	users     *repository.UserRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.OpenDB(t)

	s := &testServer{
		e:         echo.New(),
		db:        db,
		genres:    repository.NewGenreRepo(db),
		customers: repository.NewCustomerRepo(db),
		movies:    repository.NewMovieRepo(db),
		rentals:   repository.NewRentalRepo(db),
		users:     repository.NewUserRepo(db),
	}

	cfg := config.Config{JWTSecret: testSecret, AccessTTLMin: 60, BcryptCost: 4}
	svc := service.NewRentalService(db, s.rentals, s.movies, s.customers, nil)

	s.e.Use(middleware.Recover())
	router.RegisterRoutes(s.e, router.Handlers{
		Genres:    handler.NewGenreHandler(s.genres),
		Customers: handler.NewCustomerHandler(s.customers),
		Movies:    handler.NewMovieHandler(s.movies, s.genres),
		Rentals:   handler.NewRentalHandler(svc, s.rentals),
		Returns:   handler.NewReturnHandler(svc),
		Users:     handler.NewUserHandler(cfg, s.users),
		Auth:      handler.NewAuthHandler(cfg, s.users),
	}, testSecret)
	return s
}

// request performs an in-process HTTP round trip. token may be empty
// for unauthenticated requests; body is marshalled as JSON when
// non-nil.
func (s *testServer) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := utils.NewAccessToken(testSecret, "user-1", false, 60)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.NewAccessToken(testSecret, "admin-1", true, 60)
	require.NoError(t, err)
	return token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func seedGenre(t *testing.T, s *testServer, name string) *model.Genre {
	t.Helper()
	g := &model.Genre{Name: name}
	require.NoError(t, s.genres.Create(t.Context(), g))
	return g
}

func seedCustomer(t *testing.T, s *testServer) *model.Customer {
	t.Helper()
	c := &model.Customer{Name: "John", Phone: "12345"}
	require.NoError(t, s.customers.Create(t.Context(), c))
	return c
}

func seedMovie(t *testing.T, s *testServer, stock int) *model.Movie {
	t.Helper()
	m := &model.Movie{
		Title:           "Terminator",
		Genre:           model.Genre{ID: "g1", Name: "Action"},
		NumberInStock:   stock,
		DailyRentalRate: 2,
	}
	require.NoError(t, s.movies.Create(t.Context(), m))
	return m
}
