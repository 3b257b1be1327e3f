package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass is a coarse description of why a datastore call failed.  It is
// logged next to the error and never shown to end users.
type ErrorClass string

const (
	ClassNone       ErrorClass = ""
	ClassNotFound   ErrorClass = "not_found"
	ClassConstraint ErrorClass = "constraint"
	ClassConnection ErrorClass = "connection"
	ClassTimeout    ErrorClass = "timeout"
	ClassUnknown    ErrorClass = "unknown"
)

// Classify inspects err, including driver specific error types from MySQL
// and SQLite, and reports which class of failure it belongs to.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassNone
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ClassTimeout
	case errors.Is(err, ErrVenueNotFound), errors.Is(err, ErrArtistNotFound),
		errors.Is(err, ErrShowNotFound), errors.Is(err, sql.ErrNoRows):
		return ClassNotFound
	case errors.Is(err, ErrConflict):
		return ClassConstraint
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone),
		errors.Is(err, mysql.ErrInvalidConn):
		return ClassConnection
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1048, 1062, 1216, 1217, 1364, 1451, 1452:
			return ClassConstraint
		case 1205, 3024:
			return ClassTimeout
		case 1040, 1045, 1049, 1053, 2002, 2003, 2006, 2013:
			return ClassConnection
		}
		return ClassUnknown
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrConstraint:
			return ClassConstraint
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return ClassTimeout
		case sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrNotADB:
			return ClassConnection
		}
		return ClassUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ClassTimeout
		}
		return ClassConnection
	}
	return ClassUnknown
}
