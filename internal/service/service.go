// Package service implements the query and mutation operations over venues,
// artists and shows.  Every operation runs under a bounded deadline, reads
// the clock once, and reports failures as *Error values with a Kind.
package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fyyur/booking/internal/queue"
)

// DefaultTimeout bounds an operation when Options.Timeout is not set.
const DefaultTimeout = 5 * time.Second

// EventPublisher receives domain events after a mutation commits.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.Event) error
}

// Options configures the behaviour shared by every service.
type Options struct {
	// Timeout is the deadline applied to each operation.
	Timeout time.Duration
	// Now returns the current instant.  Defaults to time.Now in UTC.
	Now func() time.Time
	// Events receives domain events.  Defaults to queue.NopPublisher.
	Events EventPublisher
}

type core struct {
	db      *sql.DB
	timeout time.Duration
	now     func() time.Time
	events  EventPublisher
}

func newCore(db *sql.DB, opts Options) core {
	c := core{db: db, timeout: opts.Timeout, now: opts.Now, events: opts.Events}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.now == nil {
		c.now = func() time.Time { return time.Now().UTC() }
	}
	if c.events == nil {
		c.events = queue.NopPublisher{}
	}
	return c
}

func (c core) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// clock returns the instant used for every past/upcoming decision of one
// operation.
func (c core) clock() time.Time {
	return c.now().UTC()
}

// publish sends ev without failing the caller; the mutation has already
// committed.
func (c core) publish(ctx context.Context, ev queue.Event) {
	if err := c.events.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).
			Str("event", string(ev.Type)).
			Uint64("entity_id", ev.EntityID).
			Msg("domain event not published")
	}
}
