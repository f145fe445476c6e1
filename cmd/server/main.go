package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rentora/video-store/internal/config"
	"github.com/rentora/video-store/internal/database"
	"github.com/rentora/video-store/internal/handler"
	"github.com/rentora/video-store/internal/middleware"
	"github.com/rentora/video-store/internal/repository"
	"github.com/rentora/video-store/internal/router"
	"github.com/rentora/video-store/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg := config.Load() // fatals when JWT_SECRET or DB settings are missing

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, rate limiting disabled")
	}

	genreRepo := repository.NewGenreRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	rentalRepo := repository.NewRentalRepo(db)
	userRepo := repository.NewUserRepo(db)

	events := service.NewEventPublisher(cfg.AMQPURL)
	rentalSvc := service.NewRentalService(db, rentalRepo, movieRepo, customerRepo, events)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, router.Handlers{
		Genres:    handler.NewGenreHandler(genreRepo),
		Customers: handler.NewCustomerHandler(customerRepo),
		Movies:    handler.NewMovieHandler(movieRepo, genreRepo),
		Rentals:   handler.NewRentalHandler(rentalSvc, rentalRepo),
		Returns:   handler.NewReturnHandler(rentalSvc),
		Users:     handler.NewUserHandler(cfg, userRepo),
		Auth:      handler.NewAuthHandler(cfg, userRepo),
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
