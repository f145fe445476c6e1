package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/rentora/video-store/internal/database"
	"github.com/rentora/video-store/internal/model"
)

// MovieRepo encapsulates all database queries related to movies. The
// genre columns hold a snapshot embedded at create/update time, not
// a foreign key into the genres table. Stock mutations used by the
// rental workflow are exposed as Tx variants so they can run inside
// the checkout/return atomic batches.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

const movieColumns = "id, title, genre_id, genre_name, number_in_stock, daily_rental_rate"

func scanMovie(row interface{ Scan(...any) error }) (*model.Movie, error) {
	var m model.Movie
	if err := row.Scan(&m.ID, &m.Title, &m.Genre.ID, &m.Genre.Name, &m.NumberInStock, &m.DailyRentalRate); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new movie and populates its generated ID.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	m.ID = uuid.NewString()
	const q = `INSERT INTO movies (id, title, genre_id, genre_name, number_in_stock, daily_rental_rate)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Title, m.Genre.ID, m.Genre.Name, m.NumberInStock, m.DailyRentalRate)
	return err
}

// GetByID fetches a movie by its ID. ErrMovieNotFound if no row matches.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	return r.getByID(ctx, r.db, id)
}

// GetByIDTx is GetByID executed on a transactional handle so the
// rental workflow reads the stock count inside its batch.
func (r *MovieRepo) GetByIDTx(ctx context.Context, tx database.DBTX, id string) (*model.Movie, error) {
	return r.getByID(ctx, tx, id)
}

func (r *MovieRepo) getByID(ctx context.Context, q database.DBTX, id string) (*model.Movie, error) {
	m, err := scanMovie(q.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// List returns all movies sorted by title.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

// Update replaces the mutable fields of an existing movie, including
// the embedded genre snapshot.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	const q = `UPDATE movies SET title = ?, genre_id = ?, genre_name = ?, number_in_stock = ?, daily_rental_rate = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Genre.ID, m.Genre.Name, m.NumberInStock, m.DailyRentalRate, m.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, m.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a movie by id and returns the deleted record.
func (r *MovieRepo) Delete(ctx context.Context, id string) (*model.Movie, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id); err != nil {
		return nil, err
	}
	return m, nil
}

// DecrementStockTx decrements the stock counter by one inside the
// caller's transaction. The guard on number_in_stock keeps a lost
// checkout race from driving the counter negative: when the counter
// is already zero no row is affected and false is returned, which
// the workflow reports as out of stock.
func (r *MovieRepo) DecrementStockTx(ctx context.Context, tx database.DBTX, id string) (bool, error) {
	const q = "UPDATE movies SET number_in_stock = number_in_stock - 1 WHERE id = ? AND number_in_stock > 0"
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IncrementStockTx increments the stock counter by one inside the
// caller's transaction.
func (r *MovieRepo) IncrementStockTx(ctx context.Context, tx database.DBTX, id string) error {
	const q = "UPDATE movies SET number_in_stock = number_in_stock + 1 WHERE id = ?"
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
