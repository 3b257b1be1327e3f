package service_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fyyur/booking/internal/database"
	"github.com/fyyur/booking/internal/queue"
	"github.com/fyyur/booking/internal/repository"
	"github.com/fyyur/booking/internal/service"
)

// now is the fixed clock every service under test reads.
var now = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	events []queue.Event
	err    error
}

func (r *recorder) Publish(_ context.Context, ev queue.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func (r *recorder) types() []queue.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]queue.EventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

type fixture struct {
	db      *sql.DB
	events  *recorder
	venues  *service.VenueService
	artists *service.ArtistService
	shows   *service.ShowService
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	_, err = database.ApplySchema(context.Background(), db, database.DriverSQLite)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rec := &recorder{}
	opts := service.Options{
		Timeout: 2 * time.Second,
		Now:     func() time.Time { return now },
		Events:  rec,
	}
	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	return &fixture{
		db:      db,
		events:  rec,
		venues:  service.NewVenueService(venueRepo, opts),
		artists: service.NewArtistService(artistRepo, opts),
		shows:   service.NewShowService(showRepo, artistRepo, venueRepo, opts),
	}
}

func (f *fixture) venue(t *testing.T, name, city, state string) uint64 {
	t.Helper()
	v, err := f.venues.Create(context.Background(), service.VenueInput{
		Name: name, City: city, State: state, Phone: "555-0100", Genres: []string{"Jazz"},
	})
	require.NoError(t, err)
	return v.ID
}

func (f *fixture) artist(t *testing.T, name string) uint64 {
	t.Helper()
	a, err := f.artists.Create(context.Background(), service.ArtistInput{
		Name: name, City: "San Francisco", State: "CA", Phone: "555-0199", Genres: []string{"Rock n Roll"},
	})
	require.NoError(t, err)
	return a.ID
}

func (f *fixture) show(t *testing.T, artistID, venueID uint64, start time.Time) uint64 {
	t.Helper()
	s, err := f.shows.Create(context.Background(), service.ShowInput{ArtistID: artistID, VenueID: venueID, StartTime: start})
	require.NoError(t, err)
	return s.ID
}

// seedDemo loads the demo dataset through the services and returns the ids
// in declaration order.
func (f *fixture) seedDemo(t *testing.T) (venueIDs, artistIDs []uint64) {
	t.Helper()
	ctx := context.Background()
	for _, v := range database.DemoVenues {
		created, err := f.venues.Create(ctx, service.VenueInputFrom(v))
		require.NoError(t, err)
		venueIDs = append(venueIDs, created.ID)
	}
	for _, a := range database.DemoArtists {
		created, err := f.artists.Create(ctx, service.ArtistInputFrom(a))
		require.NoError(t, err)
		artistIDs = append(artistIDs, created.ID)
	}
	for _, s := range database.DemoShows {
		f.show(t, artistIDs[s.Artist], venueIDs[s.Venue], s.StartTime)
	}
	return venueIDs, artistIDs
}

func requireKind(t *testing.T, err error, want service.Kind) *service.Error {
	t.Helper()
	require.Error(t, err)
	var se *service.Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, want, se.Kind, "unexpected kind for %v", err)
	return se
}
