package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/rentora/video-store/internal/model"
)

// CustomerRepo encapsulates all database queries related to customers.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the provided DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Create inserts a new customer and populates its generated ID.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	c.ID = uuid.NewString()
	const q = "INSERT INTO customers (id, name, phone, is_gold) VALUES (?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Name, c.Phone, c.IsGold)
	return err
}

// GetByID fetches a customer by its ID. ErrCustomerNotFound if no
// row matches.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	const q = "SELECT id, name, phone, is_gold FROM customers WHERE id = ?"
	var c model.Customer
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all customers sorted by name.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	const q = "SELECT id, name, phone, is_gold FROM customers ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update replaces the mutable fields of an existing customer.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	const q = "UPDATE customers SET name = ?, phone = ?, is_gold = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Phone, c.IsGold, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a customer by id and returns the deleted record.
func (r *CustomerRepo) Delete(ctx context.Context, id string) (*model.Customer, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = "DELETE FROM customers WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return nil, err
	}
	return c, nil
}
