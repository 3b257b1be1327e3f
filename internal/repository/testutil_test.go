// Package repository_test contains integration tests for the repositories.
//
// All tests run against an in-memory SQLite database created from the
// embedded SQLite schema, so test tables never drift from the real ones.
package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/fyyur/booking/internal/database"
)

// now is the fixed instant the tests treat as "the current time".
var now = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if _, err := database.ApplySchema(context.Background(), testDB, database.DriverSQLite); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})
	return testDB
}

// seedVenue inserts a venue with the minimum set of columns and returns its ID.
func seedVenue(t *testing.T, db *sql.DB, name, city, state string) uint64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO venues (name, city, state, genres) VALUES (?, ?, ?, '["Jazz"]')`,
		name, city, state)
	if err != nil {
		t.Fatalf("failed to seed venue: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint64(id)
}

// seedArtist inserts an artist and returns its ID.
func seedArtist(t *testing.T, db *sql.DB, name string) uint64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO artists (name, city, state, genres) VALUES (?, 'San Francisco', 'CA', '["Rock n Roll"]')`,
		name)
	if err != nil {
		t.Fatalf("failed to seed artist: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint64(id)
}

// seedShow books an artist at a venue and returns the show ID.
func seedShow(t *testing.T, db *sql.DB, artistID, venueID uint64, start time.Time) uint64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`,
		artistID, venueID, start)
	if err != nil {
		t.Fatalf("failed to seed show: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint64(id)
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
