package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/rentora/video-store/internal/database"
	"github.com/rentora/video-store/internal/model"
)

// RentalRepo provides access to the rentals table. Every row embeds
// the movie and customer snapshots taken at checkout; the snapshot
// columns are denormalized copies and never joined back to their
// source tables. All timestamps are stored in UTC.
type RentalRepo struct {
	db *sql.DB
}

// NewRentalRepo returns a new RentalRepo bound to the given database.
func NewRentalRepo(db *sql.DB) *RentalRepo { return &RentalRepo{db: db} }

const rentalColumns = `id, movie_id, movie_title, movie_daily_rental_rate,
	customer_id, customer_name, customer_phone, customer_is_gold,
	date_out, date_returned, rental_fee`

func scanRental(row interface{ Scan(...any) error }) (*model.Rental, error) {
	var (
		rental   model.Rental
		returned sql.NullTime
		fee      sql.NullFloat64
	)
	err := row.Scan(
		&rental.ID,
		&rental.Movie.ID, &rental.Movie.Title, &rental.Movie.DailyRentalRate,
		&rental.Customer.ID, &rental.Customer.Name, &rental.Customer.Phone, &rental.Customer.IsGold,
		&rental.DateOut, &returned, &fee,
	)
	if err != nil {
		return nil, err
	}
	if returned.Valid {
		t := returned.Time.UTC()
		rental.DateReturned = &t
	}
	if fee.Valid {
		f := fee.Float64
		rental.RentalFee = &f
	}
	rental.DateOut = rental.DateOut.UTC()
	return &rental, nil
}

// CreateTx inserts a new rental within the scope of an existing
// transaction. It populates the generated ID on the provided record.
// The caller must commit or rollback the transaction.
func (r *RentalRepo) CreateTx(ctx context.Context, tx database.DBTX, rental *model.Rental) error {
	rental.ID = uuid.NewString()
	const q = `INSERT INTO rentals (id, movie_id, movie_title, movie_daily_rental_rate,
	             customer_id, customer_name, customer_phone, customer_is_gold, date_out)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q,
		rental.ID,
		rental.Movie.ID, rental.Movie.Title, rental.Movie.DailyRentalRate,
		rental.Customer.ID, rental.Customer.Name, rental.Customer.Phone, rental.Customer.IsGold,
		rental.DateOut,
	)
	return err
}

// GetByID fetches a rental by its ID. ErrRentalNotFound if no row
// matches.
func (r *RentalRepo) GetByID(ctx context.Context, id string) (*model.Rental, error) {
	rental, err := scanRental(r.db.QueryRowContext(ctx,
		"SELECT "+rentalColumns+" FROM rentals WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return rental, nil
}

// Lookup returns the most recent rental for a (customer, movie)
// pair, open or closed. The return workflow inspects DateReturned to
// distinguish an open rental from an already processed one.
// ErrRentalNotFound when the pair has no rental at all.
func (r *RentalRepo) Lookup(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	return r.lookup(ctx, r.db, customerID, movieID)
}

// LookupTx is Lookup executed on a transactional handle.
func (r *RentalRepo) LookupTx(ctx context.Context, tx database.DBTX, customerID, movieID string) (*model.Rental, error) {
	return r.lookup(ctx, tx, customerID, movieID)
}

func (r *RentalRepo) lookup(ctx context.Context, q database.DBTX, customerID, movieID string) (*model.Rental, error) {
	rental, err := scanRental(q.QueryRowContext(ctx,
		"SELECT "+rentalColumns+" FROM rentals WHERE customer_id = ? AND movie_id = ? ORDER BY date_out DESC LIMIT 1",
		customerID, movieID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return rental, nil
}

// List returns all rentals sorted by checkout time, newest first.
func (r *RentalRepo) List(ctx context.Context) ([]model.Rental, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+rentalColumns+" FROM rentals ORDER BY date_out DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rentals := []model.Rental{}
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rental)
	}
	return rentals, rows.Err()
}

// MarkReturnedTx closes a rental inside the caller's transaction by
// setting date_returned and rental_fee. The WHERE clause requires
// the rental to still be open so two concurrent returns cannot both
// close it; the second sees zero affected rows and gets
// ErrRentalNotFound.
func (r *RentalRepo) MarkReturnedTx(ctx context.Context, tx database.DBTX, rental *model.Rental) error {
	const q = "UPDATE rentals SET date_returned = ?, rental_fee = ? WHERE id = ? AND date_returned IS NULL"
	res, err := tx.ExecContext(ctx, q, rental.DateReturned, rental.RentalFee, rental.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRentalNotFound
	}
	return nil
}
