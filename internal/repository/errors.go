// Package repository contains data access logic separated from HTTP
// handlers. This file defines sentinel error values shared across the
// repositories so that higher layers can distinguish failure
// scenarios: not-found conditions translate to HTTP 404 on :id
// routes and to HTTP 400 when the id arrived as a body reference.
package repository

import "errors"

// ErrGenreNotFound is returned when a genre lookup matches no row.
var ErrGenreNotFound = errors.New("genre not found")

// ErrCustomerNotFound is returned when a customer lookup matches no row.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrMovieNotFound is returned when a movie lookup matches no row.
var ErrMovieNotFound = errors.New("movie not found")

// ErrRentalNotFound is returned when no rental exists for a lookup.
var ErrRentalNotFound = errors.New("rental not found")

// ErrEmailExists is returned when registering a user with an email
// that is already taken.
var ErrEmailExists = errors.New("email already exists")
