// Package queue defines message payloads exchanged over the message broker.
package queue

// RentalCheckedOutEvent is published when a checkout commits. It
// carries enough for downstream consumers (notifications, analytics)
// to act without querying the primary database.
type RentalCheckedOutEvent struct {
	RentalID        string  `json:"rental_id"`
	MovieID         string  `json:"movie_id"`
	MovieTitle      string  `json:"movie_title"`
	DailyRentalRate float64 `json:"daily_rental_rate"`
	CustomerID      string  `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	DateOut         string  `json:"date_out"`
}

// RentalReturnedEvent is published when a return commits.
type RentalReturnedEvent struct {
	RentalID     string  `json:"rental_id"`
	MovieID      string  `json:"movie_id"`
	MovieTitle   string  `json:"movie_title"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	DateReturned string  `json:"date_returned"`
	RentalFee    float64 `json:"rental_fee"`
	DaysRented   int     `json:"days_rented"`
}
