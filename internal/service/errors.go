package service

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fyyur/booking/internal/repository"
)

// Kind classifies a service failure so callers can tell user errors from
// system failures.
type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindValidation  Kind = "validation_failed"
	KindConflict    Kind = "conflict"
	KindPersistence Kind = "persistence_failed"
)

// Error is returned by every service operation.  Message is safe to show to
// end users; Err carries the underlying cause for logging.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or KindPersistence for errors that did
// not originate in this package.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindPersistence
}

func notFound(op, message string, err error) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message, Err: err}
}

// invalid converts an ozzo validation result into a KindValidation error
// with one message per offending field.
func invalid(op string, err error) *Error {
	fields := map[string]string{}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			if ferr != nil {
				fields[field] = ferr.Error()
			}
		}
	}
	return &Error{Kind: KindValidation, Op: op, Message: "Submitted data is invalid.", Fields: fields, Err: err}
}

func invalidField(op, field, msg string) *Error {
	return &Error{
		Kind:    KindValidation,
		Op:      op,
		Message: "Submitted data is invalid.",
		Fields:  map[string]string{field: msg},
		Err:     fmt.Errorf("%s: %s", field, msg),
	}
}

// fromRepo maps a repository error onto a service Error.  Missing records
// become KindNotFound, duplicate bookings KindConflict and everything else
// KindPersistence with the supplied generic message.
func fromRepo(op, message string, err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	switch {
	case errors.Is(err, repository.ErrVenueNotFound):
		return notFound(op, "Venue not found.", err)
	case errors.Is(err, repository.ErrArtistNotFound):
		return notFound(op, "Artist not found.", err)
	case errors.Is(err, repository.ErrShowNotFound):
		return notFound(op, "Show not found.", err)
	case errors.Is(err, repository.ErrConflict):
		return &Error{Kind: KindConflict, Op: op, Message: "This show is already booked.", Err: err}
	}
	return &Error{Kind: KindPersistence, Op: op, Message: message, Err: err}
}
