package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Genre is a movie category as stored in the `genres` table.
// Movies embed a copy of the genre at creation/update time instead
// of holding a live reference, so renaming a genre does not change
// movies that already embed it.
//
// Fields:
//  ID   – store-generated identifier (UUID string).
//  Name – genre name, 5–50 characters.
type Genre struct {
	ID   string `json:"id"`   // genres.id
	Name string `json:"name"` // genres.name
}

// GenreInput carries the client-supplied fields for creating or
// updating a genre.
type GenreInput struct {
	Name string `json:"name"`
}

// ValidateGenre checks a GenreInput against the schema bounds and
// returns a descriptive error for the first violation found.
func ValidateGenre(in GenreInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if n := utf8.RuneCountInString(name); n < 5 || n > 50 {
		return errors.New("name must be between 5 and 50 characters")
	}
	return nil
}
