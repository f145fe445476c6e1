package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Movie is a title available for rent as stored in the `movies`
// table. The genre is an embedded snapshot (id and name copied from
// the referenced genre when the movie is created or updated), not a
// live reference. NumberInStock is mutated only by the rental
// workflow and by direct edits through the update endpoint.
//
// Fields:
//  ID              – store-generated identifier (UUID string).
//  Title           – movie title, 1–50 characters after trimming.
//  Genre           – embedded genre snapshot.
//  NumberInStock   – copies available, 0–50.
//  DailyRentalRate – rental price per day, 0–50.
type Movie struct {
	ID              string  `json:"id"`              // movies.id
	Title           string  `json:"title"`           // movies.title
	Genre           Genre   `json:"genre"`           // movies.genre_id / movies.genre_name
	NumberInStock   int     `json:"numberInStock"`   // movies.number_in_stock
	DailyRentalRate float64 `json:"dailyRentalRate"` // movies.daily_rental_rate
}

// MovieInput carries the client-supplied fields for creating or
// updating a movie. GenreID must reference an existing genre; the
// handler resolves it and embeds the snapshot.
type MovieInput struct {
	Title           string  `json:"title"`
	GenreID         string  `json:"genreId"`
	NumberInStock   int     `json:"numberInStock"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

// ValidateMovie checks a MovieInput against the schema bounds. The
// genre reference itself is resolved separately against the store.
func ValidateMovie(in MovieInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(title) > 50 {
		return errors.New("title must be at most 50 characters")
	}
	if strings.TrimSpace(in.GenreID) == "" {
		return errors.New("genreId is required")
	}
	if in.NumberInStock < 0 || in.NumberInStock > 50 {
		return errors.New("numberInStock must be between 0 and 50")
	}
	if in.DailyRentalRate < 0 || in.DailyRentalRate > 50 {
		return errors.New("dailyRentalRate must be between 0 and 50")
	}
	return nil
}
