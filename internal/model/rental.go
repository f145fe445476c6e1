package model

import (
	"errors"
	"strings"
	"time"
)

// RentalMovie is the movie snapshot embedded in a rental. It copies
// the fields needed to price and display the rental at checkout
// time.
type RentalMovie struct {
	ID              string  `json:"id"`              // rentals.movie_id
	Title           string  `json:"title"`           // rentals.movie_title
	DailyRentalRate float64 `json:"dailyRentalRate"` // rentals.movie_daily_rental_rate
}

// RentalCustomer is the customer snapshot embedded in a rental.
type RentalCustomer struct {
	ID     string `json:"id"`     // rentals.customer_id
	Name   string `json:"name"`   // rentals.customer_name
	Phone  string `json:"phone"`  // rentals.customer_phone
	IsGold bool   `json:"isGold"` // rentals.customer_is_gold
}

// Rental records a checkout of one movie by one customer. The movie
// and customer are embedded snapshots taken at checkout, never live
// references. A rental is open while DateReturned is nil; exactly
// one open rental should exist per (customer, movie) pair, enforced
// by the rental workflow rather than a uniqueness constraint.
//
// Fields:
//  ID           – store-generated identifier (UUID string).
//  Movie        – movie snapshot taken at checkout.
//  Customer     – customer snapshot taken at checkout.
//  DateOut      – checkout timestamp, set at creation.
//  DateReturned – return timestamp, nil until returned.
//  RentalFee    – computed fee, nil until returned.
type Rental struct {
	ID           string         `json:"id"`                     // rentals.id
	Movie        RentalMovie    `json:"movie"`                  // embedded snapshot
	Customer     RentalCustomer `json:"customer"`               // embedded snapshot
	DateOut      time.Time      `json:"dateOut"`                // rentals.date_out
	DateReturned *time.Time     `json:"dateReturned,omitempty"` // rentals.date_returned (nullable)
	RentalFee    *float64       `json:"rentalFee,omitempty"`    // rentals.rental_fee (nullable)
}

// RentalInput carries the identifier pair used by both the checkout
// and return endpoints.
type RentalInput struct {
	CustomerID string `json:"customerId"`
	MovieID    string `json:"movieId"`
}

// ValidateRental checks that both identifiers are present. Whether
// they reference existing documents is resolved against the store.
func ValidateRental(in RentalInput) error {
	if strings.TrimSpace(in.CustomerID) == "" {
		return errors.New("customerId is required")
	}
	if strings.TrimSpace(in.MovieID) == "" {
		return errors.New("movieId is required")
	}
	return nil
}
