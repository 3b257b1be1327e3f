package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"nil", nil, ClassNone},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), ClassTimeout},
		{"canceled", context.Canceled, ClassTimeout},
		{"venue not found", fmt.Errorf("get: %w", ErrVenueNotFound), ClassNotFound},
		{"artist not found", ErrArtistNotFound, ClassNotFound},
		{"no rows", sql.ErrNoRows, ClassNotFound},
		{"conflict", ErrConflict, ClassConstraint},
		{"bad conn", driver.ErrBadConn, ClassConnection},
		{"conn done", sql.ErrConnDone, ClassConnection},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, ClassConstraint},
		{"mysql fk", &mysql.MySQLError{Number: 1452}, ClassConstraint},
		{"mysql lock wait", &mysql.MySQLError{Number: 1205}, ClassTimeout},
		{"mysql gone away", &mysql.MySQLError{Number: 2006}, ClassConnection},
		{"mysql other", &mysql.MySQLError{Number: 1064}, ClassUnknown},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, ClassConstraint},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ClassTimeout},
		{"sqlite io", sqlite3.Error{Code: sqlite3.ErrIoErr}, ClassConnection},
		{"plain", errors.New("something else"), ClassUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%hop%", containsPattern("Hop"))
	assert.Equal(t, "%%", containsPattern(""))
	assert.Equal(t, "%100!%%", containsPattern("100%"))
	assert.Equal(t, "%a!_b%", containsPattern("a_b"))
	assert.Equal(t, "%wow!!%", containsPattern("wow!"))
}
