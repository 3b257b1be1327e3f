// Package repository defines the data access layer for venues, artists and
// shows.  Every query is written out explicitly against database/sql with
// `?` placeholders so the same statements run on MySQL and SQLite.
//
// The sentinel values below allow higher layers such as the service and
// handlers to distinguish between different failure scenarios.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue id does not exist.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id does not exist.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show id does not exist.
var ErrShowNotFound = errors.New("show not found")

// ErrConflict is returned when an insert would duplicate an existing row,
// such as booking the same artist at the same venue and start time twice.
var ErrConflict = errors.New("conflict")
