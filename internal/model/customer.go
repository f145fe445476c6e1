package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Customer is a store customer as stored in the `customers` table.
// Rentals embed a copy of the customer at checkout time, so later
// edits do not retroactively change historical rentals.
//
// Fields:
//  ID     – store-generated identifier (UUID string).
//  Name   – customer name, 2–50 characters.
//  Phone  – phone number, 2–50 characters.
//  IsGold – loyalty flag, defaults to false.
type Customer struct {
	ID     string `json:"id"`     // customers.id
	Name   string `json:"name"`   // customers.name
	Phone  string `json:"phone"`  // customers.phone
	IsGold bool   `json:"isGold"` // customers.is_gold
}

// CustomerInput carries the client-supplied fields for creating or
// updating a customer.
type CustomerInput struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

// ValidateCustomer checks a CustomerInput against the schema bounds.
func ValidateCustomer(in CustomerInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return errors.New("name must be between 2 and 50 characters")
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return errors.New("phone is required")
	}
	if n := utf8.RuneCountInString(phone); n < 2 || n > 50 {
		return errors.New("phone must be between 2 and 50 characters")
	}
	return nil
}
