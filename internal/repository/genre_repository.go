package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/rentora/video-store/internal/model"
)

// GenreRepo encapsulates all database queries related to genres.
type GenreRepo struct {
	db *sql.DB
}

// NewGenreRepo constructs a GenreRepo with the provided DB handle.
func NewGenreRepo(db *sql.DB) *GenreRepo { return &GenreRepo{db: db} }

// Create inserts a new genre and populates its generated ID.
func (r *GenreRepo) Create(ctx context.Context, g *model.Genre) error {
	g.ID = uuid.NewString()
	const q = "INSERT INTO genres (id, name) VALUES (?, ?)"
	_, err := r.db.ExecContext(ctx, q, g.ID, g.Name)
	return err
}

// GetByID fetches a genre by its ID. It returns ErrGenreNotFound if
// no row matches.
func (r *GenreRepo) GetByID(ctx context.Context, id string) (*model.Genre, error) {
	const q = "SELECT id, name FROM genres WHERE id = ?"
	var g model.Genre
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return &g, nil
}

// List returns all genres sorted by name.
func (r *GenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	const q = "SELECT id, name FROM genres ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []model.Genre{}
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// Update replaces the name of an existing genre. ErrGenreNotFound is
// returned when the id matches no row.
func (r *GenreRepo) Update(ctx context.Context, g *model.Genre) error {
	const q = "UPDATE genres SET name = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, g.Name, g.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// distinguish "missing" from "unchanged": a same-name update
		// reports zero affected rows on some drivers
		if _, err := r.GetByID(ctx, g.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a genre by id and returns the deleted record so the
// handler can echo it back. ErrGenreNotFound if no row matched.
func (r *GenreRepo) Delete(ctx context.Context, id string) (*model.Genre, error) {
	g, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = "DELETE FROM genres WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return nil, err
	}
	return g, nil
}
