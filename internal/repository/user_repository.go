package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/rentora/video-store/internal/model"
	"github.com/rentora/video-store/internal/utils"
)

// UserRepo provides access to the users table.
type UserRepo struct{ db *sql.DB }

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create hashes the password and inserts the user, returning the
// stored record. ErrEmailExists when the normalized email is taken.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
	}
	const q = "INSERT INTO users (id, name, email, password_hash, is_admin) VALUES (?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash, u.IsAdmin); err != nil {
		if isDuplicate(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail fetches a user by normalized email. sql.ErrNoRows is
// passed through so the auth handler can fold it into a generic
// invalid-credentials response.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = "SELECT id, name, email, password_hash, is_admin FROM users WHERE email = ? LIMIT 1"
	var u model.User
	err := r.db.QueryRowContext(ctx, q, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	const q = "SELECT id, name, email, password_hash, is_admin FROM users WHERE id = ? LIMIT 1"
	var u model.User
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// isDuplicate recognizes a unique-key violation. MySQL reports error
// 1062; sqlite (used by the test harness) says "UNIQUE constraint".
func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") || strings.Contains(msg, "unique")
}
