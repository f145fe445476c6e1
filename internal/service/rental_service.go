// Package service orchestrates the rental workflow. Handlers decide
// HTTP concerns; this layer owns the checkout/return business rules
// and their all-or-nothing persistence batches.
package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rentora/video-store/internal/database"
	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/queue"
	"github.com/rentora/video-store/internal/repository"
)

// ErrMovieOutOfStock rejects a checkout when no copies are left.
var ErrMovieOutOfStock = errors.New("movie not in stock")

// ErrAlreadyReturned rejects a second return of the same rental.
var ErrAlreadyReturned = errors.New("rental already processed")

// RentalService implements the two-step rental lifecycle. Checkout
// creates a rental and decrements movie stock in one transaction;
// Return closes the open rental, computes the fee and restores stock
// in one transaction. No in-process locks are held: atomicity against
// concurrent requests comes entirely from the database transactions.
type RentalService struct {
	db        *sql.DB
	rentals   *repository.RentalRepo
	movies    *repository.MovieRepo
	customers *repository.CustomerRepo
	events    *EventPublisher
	now       func() time.Time
}

// NewRentalService constructs a RentalService. events may be nil to
// disable broker publishing.
func NewRentalService(db *sql.DB, rentals *repository.RentalRepo, movies *repository.MovieRepo, customers *repository.CustomerRepo, events *EventPublisher) *RentalService {
	if db == nil || rentals == nil || movies == nil || customers == nil {
		panic("nil dependency passed to NewRentalService")
	}
	return &RentalService{
		db:        db,
		rentals:   rentals,
		movies:    movies,
		customers: customers,
		events:    events,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Checkout rents a movie to a customer. Both references are resolved
// first; a missing movie or customer surfaces as the repository
// not-found error so the handler can answer 400 for the dangling
// reference. With stock at zero the checkout is rejected before any
// write. Otherwise the rental insert and the stock decrement commit
// together or not at all.
func (s *RentalService) Checkout(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if movie.NumberInStock == 0 {
		return nil, ErrMovieOutOfStock
	}

	rental := &model.Rental{
		Movie: model.RentalMovie{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		Customer: model.RentalCustomer{
			ID:     customer.ID,
			Name:   customer.Name,
			Phone:  customer.Phone,
			IsGold: customer.IsGold,
		},
		DateOut: s.now(),
	}

	err = database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		if err := s.rentals.CreateTx(ctx, tx, rental); err != nil {
			return err
		}
		ok, err := s.movies.DecrementStockTx(ctx, tx, movie.ID)
		if err != nil {
			return err
		}
		if !ok {
			// another checkout drained the last copy between the
			// stock check and the decrement
			return ErrMovieOutOfStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.Publish(ctx, QueueRentalCheckedOut, queue.RentalCheckedOutEvent{
			RentalID:        rental.ID,
			MovieID:         rental.Movie.ID,
			MovieTitle:      rental.Movie.Title,
			DailyRentalRate: rental.Movie.DailyRentalRate,
			CustomerID:      rental.Customer.ID,
			CustomerName:    rental.Customer.Name,
			DateOut:         rental.DateOut.Format(time.RFC3339),
		})
	}
	return rental, nil
}

// Return closes the open rental for a (customer, movie) pair. The
// fee is the number of whole days rented (duration truncated toward
// zero, so a same-day return costs nothing) times the daily rate
// embedded at checkout. The rental update and the stock increment
// commit together or not at all. A movie deleted after checkout does
// not block its return; the stock restore is simply skipped.
func (s *RentalService) Return(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	var rental *model.Rental
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		rental, err = s.rentals.LookupTx(ctx, tx, customerID, movieID)
		if err != nil {
			return err
		}
		if rental.DateReturned != nil {
			return ErrAlreadyReturned
		}

		returned := s.now()
		fee := float64(DaysRented(rental.DateOut, returned)) * rental.Movie.DailyRentalRate
		rental.DateReturned = &returned
		rental.RentalFee = &fee

		if err := s.rentals.MarkReturnedTx(ctx, tx, rental); err != nil {
			return err
		}
		// The movie may have been deleted since checkout. The rental
		// still closes and its fee is still owed; there is just no
		// stock row left to restore.
		if err := s.movies.IncrementStockTx(ctx, tx, rental.Movie.ID); err != nil && !errors.Is(err, repository.ErrMovieNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.Publish(ctx, QueueRentalReturned, queue.RentalReturnedEvent{
			RentalID:     rental.ID,
			MovieID:      rental.Movie.ID,
			MovieTitle:   rental.Movie.Title,
			CustomerID:   rental.Customer.ID,
			CustomerName: rental.Customer.Name,
			DateReturned: rental.DateReturned.Format(time.RFC3339),
			RentalFee:    *rental.RentalFee,
			DaysRented:   DaysRented(rental.DateOut, *rental.DateReturned),
		})
	}
	return rental, nil
}

// DaysRented is the number of whole 24h days between checkout and
// return, truncated toward zero.
func DaysRented(dateOut, dateReturned time.Time) int {
	return int(dateReturned.Sub(dateOut) / (24 * time.Hour))
}
