// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rentora/video-store/internal/handler"
	"github.com/rentora/video-store/internal/middleware"
)

// Handlers bundles every handler the API mounts. All fields must be
// non-nil.
type Handlers struct {
	Genres    *handler.GenreHandler
	Customers *handler.CustomerHandler
	Movies    *handler.MovieHandler
	Rentals   *handler.RentalHandler
	Returns   *handler.ReturnHandler
	Users     *handler.UserHandler
	Auth      *handler.AuthHandler
}

// RegisterRoutes registers all application routes on the provided
// Echo instance. Reads are public; creates and updates require a
// valid token; deletes additionally require the admin flag. The two
// gates always run in order, token check before admin check.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	auth := middleware.JWTAuth(jwtSecret)
	admin := middleware.RequireAdmin()

	genres := e.Group("/api/genres")
	genres.GET("", h.Genres.List)
	genres.GET("/:id", h.Genres.GetByID)
	genres.POST("", h.Genres.Create, auth)
	genres.PUT("/:id", h.Genres.Update, auth)
	genres.DELETE("/:id", h.Genres.Delete, auth, admin)

	customers := e.Group("/api/customers")
	customers.GET("", h.Customers.List)
	customers.GET("/:id", h.Customers.GetByID)
	customers.POST("", h.Customers.Create, auth)
	customers.PUT("/:id", h.Customers.Update, auth)
	customers.DELETE("/:id", h.Customers.Delete, auth, admin)

	movies := e.Group("/api/movies")
	movies.GET("", h.Movies.List)
	movies.GET("/:id", h.Movies.GetByID)
	movies.POST("", h.Movies.Create, auth)
	movies.PUT("/:id", h.Movies.Update, auth)
	movies.DELETE("/:id", h.Movies.Delete, auth, admin)

	e.GET("/api/rentals", h.Rentals.List, auth)
	e.POST("/api/rentals", h.Rentals.Create, auth)
	e.POST("/api/returns", h.Returns.Create, auth)

	e.POST("/api/users", h.Users.Register)
	e.POST("/api/auth", h.Auth.Login)
}
