// Package testutil provides an in-memory SQL database for tests.
// The schema mirrors the production MySQL layout; the repositories
// issue portable SQL so they run unchanged against both drivers.
package testutil

import (
	"database/sql"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE genres (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE customers (
	id      TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	phone   TEXT NOT NULL,
	is_gold BOOLEAN NOT NULL DEFAULT 0
);
CREATE TABLE movies (
	id                TEXT PRIMARY KEY,
	title             TEXT NOT NULL,
	genre_id          TEXT NOT NULL,
	genre_name        TEXT NOT NULL,
	number_in_stock   INTEGER NOT NULL,
	daily_rental_rate REAL NOT NULL
);
CREATE TABLE rentals (
	id                      TEXT PRIMARY KEY,
	movie_id                TEXT NOT NULL,
	movie_title             TEXT NOT NULL,
	movie_daily_rental_rate REAL NOT NULL,
	customer_id             TEXT NOT NULL,
	customer_name           TEXT NOT NULL,
	customer_phone          TEXT NOT NULL,
	customer_is_gold        BOOLEAN NOT NULL,
	date_out                DATETIME NOT NULL,
	date_returned           DATETIME,
	rental_fee              REAL
);
CREATE TABLE users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin      BOOLEAN NOT NULL DEFAULT 0
);
`

// OpenDB returns an isolated in-memory database with the full schema
// applied. Each test gets its own named memory database; a single
// connection keeps it alive for the duration of the test.
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
