package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// User is an application account used only for authentication; it
// is not part of the rental domain. The password is stored as a
// bcrypt hash, never in plain text.
//
// Fields:
//  ID           – store-generated identifier (UUID string).
//  Name         – display name, 2–50 characters.
//  Email        – unique email address, 2–255 characters.
//  PasswordHash – bcrypt hash of the password.
//  IsAdmin      – grants access to privileged (delete) routes.
type User struct {
	ID           string `json:"id"`      // users.id
	Name         string `json:"name"`    // users.name
	Email        string `json:"email"`   // users.email
	PasswordHash string `json:"-"`       // users.password_hash
	IsAdmin      bool   `json:"isAdmin"` // users.is_admin
}

// UserInput carries the client-supplied registration fields. The
// plain password must be 7–1024 characters before hashing.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateUser checks a UserInput against the schema bounds.
func ValidateUser(in UserInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return errors.New("name must be between 2 and 50 characters")
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(in.Password); n < 7 || n > 1024 {
		return errors.New("password must be between 7 and 1024 characters")
	}
	return nil
}

// CredentialsInput carries the login fields for the auth endpoint.
type CredentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateCredentials checks the login payload shape. Whether the
// credentials match a user is decided against the store.
func ValidateCredentials(in CredentialsInput) error {
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if in.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	if n := utf8.RuneCountInString(email); n < 2 || n > 255 {
		return errors.New("email must be between 2 and 255 characters")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return errors.New("email must be a valid email address")
	}
	return nil
}
