package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyyur/booking/internal/database"
	"github.com/fyyur/booking/internal/service"
)

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	_, err = database.ApplySchema(ctx, db, database.DriverSQLite)
	require.NoError(t, err)

	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	svcs := newServices(db, service.Options{Now: func() time.Time { return now }})

	res, err := seedDemo(ctx, svcs)
	require.NoError(t, err)
	assert.Len(t, res.Venues, len(database.DemoVenues))
	assert.Len(t, res.Artists, len(database.DemoArtists))
	assert.Equal(t, len(database.DemoShows), res.Shows)

	shows, err := svcs.Shows.List(ctx)
	require.NoError(t, err)
	assert.Len(t, shows, len(database.DemoShows))

	venues, err := svcs.Venues.ListByArea(ctx)
	require.NoError(t, err)
	total := 0
	for _, a := range venues {
		total += len(a.Venues)
	}
	assert.Equal(t, len(database.DemoVenues), total)
}
