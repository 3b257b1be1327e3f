package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyyur/booking/internal/model"
	"github.com/fyyur/booking/internal/repository"
)

func TestShowRepo_CreateTx(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShowRepo(db)
	ctx := context.Background()

	venue := seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := seedArtist(t, db, "Guns N Petals")
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	show := &model.Show{ArtistID: artist, VenueID: venue, StartTime: start}
	err := repository.WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.CreateTx(ctx, tx, show)
	})
	require.NoError(t, err)
	require.NotZero(t, show.ID)

	got, err := repo.GetByID(ctx, show.ID)
	require.NoError(t, err)
	assert.Equal(t, artist, got.ArtistID)
	assert.Equal(t, venue, got.VenueID)
	assert.True(t, got.StartTime.Equal(start))
}

func TestShowRepo_CreateTx_DuplicateIsConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShowRepo(db)
	ctx := context.Background()

	venue := seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := seedArtist(t, db, "Guns N Petals")
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	seedShow(t, db, artist, venue, start)

	err := repository.WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.CreateTx(ctx, tx, &model.Show{ArtistID: artist, VenueID: venue, StartTime: start})
	})
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM shows`))

	// a different start time is a separate booking
	err = repository.WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.CreateTx(ctx, tx, &model.Show{ArtistID: artist, VenueID: venue, StartTime: start.Add(time.Hour)})
	})
	assert.NoError(t, err)
}

func TestShowRepo_CreateTx_ForeignKeyViolation(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShowRepo(db)
	ctx := context.Background()

	err := repository.WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.CreateTx(ctx, tx, &model.Show{ArtistID: 1, VenueID: 1, StartTime: now})
	})
	require.Error(t, err)
	assert.Equal(t, repository.ClassConstraint, repository.Classify(err))
}

func TestShowRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShowRepo(db)

	_, err := repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, repository.ErrShowNotFound)
}

func TestShowRepo_ListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewShowRepo(db)
	ctx := context.Background()

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	hop := seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	park := seedVenue(t, db, "Park Square Live Music & Coffee", "San Francisco", "CA")
	guns := seedArtist(t, db, "Guns N Petals")
	sax := seedArtist(t, db, "The Wild Sax Band")

	first := seedShow(t, db, sax, park, now.Add(72*time.Hour))
	second := seedShow(t, db, guns, hop, now.Add(-72*time.Hour))

	list, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, first, list[0].ID)
	assert.Equal(t, park, list[0].VenueID)
	assert.Equal(t, "Park Square Live Music & Coffee", list[0].VenueName)
	assert.Equal(t, sax, list[0].ArtistID)
	assert.Equal(t, "The Wild Sax Band", list[0].ArtistName)
	assert.True(t, list[0].StartTime.Equal(now.Add(72*time.Hour)))

	assert.Equal(t, second, list[1].ID)
	assert.Equal(t, "Guns N Petals", list[1].ArtistName)
}
