// Package queue defines the domain events exchanged over RabbitMQ together
// with the publisher used by the service layer and the consumer that writes
// them to the activity log.
package queue

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event.
type EventType string

const (
	VenueCreated  EventType = "venue.created"
	VenueUpdated  EventType = "venue.updated"
	VenueDeleted  EventType = "venue.deleted"
	ArtistCreated EventType = "artist.created"
	ArtistUpdated EventType = "artist.updated"
	ShowCreated   EventType = "show.created"
)

// Event is published after a mutation commits.  It carries enough
// information for downstream consumers to log or notify without querying
// the primary database.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	EntityID   uint64         `json:"entity_id"`
	Name       string         `json:"name,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// NewEvent builds an event with a fresh random ID.
func NewEvent(t EventType, entityID uint64, name string, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: at.UTC(),
	}
}

// With returns a copy of e with key set in its payload.
func (e Event) With(key string, value any) Event {
	p := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		p[k] = v
	}
	p[key] = value
	e.Payload = p
	return e
}

// Line renders the event as a single human-friendly activity log line.
// Payload keys are written in sorted order so lines are stable.
func (e Event) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s | id=%d", e.OccurredAt.UTC().Format(time.RFC3339), e.Type, e.EntityID)
	if e.Name != "" {
		fmt.Fprintf(&b, " | name=%q", e.Name)
	}
	keys := make([]string, 0, len(e.Payload))
	for k := range e.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " | %s=%v", k, e.Payload[k])
	}
	b.WriteByte('\n')
	return b.String()
}
