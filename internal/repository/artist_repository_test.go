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

func TestArtistRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewArtistRepo(db)
	ctx := context.Background()

	a := &model.Artist{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       model.Genres{"Rock n Roll"},
		WebsiteLink:  "https://www.gunsnpetalsband.com",
		SeekingVenue: true,
	}
	err := repository.WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.CreateTx(ctx, tx, a)
	})
	require.NoError(t, err)
	require.NotZero(t, a.ID)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Name, got.Name)
	assert.Equal(t, a.Phone, got.Phone)
	assert.Equal(t, a.Genres, got.Genres)
	assert.Equal(t, a.WebsiteLink, got.WebsiteLink)
	assert.True(t, got.SeekingVenue)
	assert.Empty(t, got.SeekingDescription)
}

func TestArtistRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewArtistRepo(db)

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrArtistNotFound)
}

func TestArtistRepo_UpdateTx(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewArtistRepo(db)
	ctx := context.Background()

	id := seedArtist(t, db, "Matt Quevedo")
	err := repository.WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.UpdateTx(ctx, tx, &model.Artist{
			ID:                 id,
			Name:               "Matt Quevedo Trio",
			City:               "New York",
			State:              "NY",
			Genres:             model.Genres{"Jazz"},
			SeekingDescription: "",
		})
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Matt Quevedo Trio", got.Name)
	assert.Equal(t, "NY", got.State)
	assert.Equal(t, model.Genres{"Jazz"}, got.Genres)
	assert.False(t, got.SeekingVenue)

	err = repository.WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.UpdateTx(ctx, tx, &model.Artist{ID: id + 100, Name: "Nobody"})
	})
	assert.ErrorIs(t, err, repository.ErrArtistNotFound)
}

func TestArtistRepo_ListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewArtistRepo(db)
	ctx := context.Background()

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	first := seedArtist(t, db, "Guns N Petals")
	second := seedArtist(t, db, "Matt Quevedo")

	list, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.ArtistSummary{
		{ID: first, Name: "Guns N Petals"},
		{ID: second, Name: "Matt Quevedo"},
	}, list)
}

func TestArtistRepo_SearchByName_CountsUpcoming(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewArtistRepo(db)
	ctx := context.Background()

	venue := seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	guns := seedArtist(t, db, "Guns N Petals")
	seedArtist(t, db, "Matt Quevedo")
	sax := seedArtist(t, db, "The Wild Sax Band")

	seedShow(t, db, guns, venue, now.Add(-time.Hour))
	seedShow(t, db, guns, venue, now.Add(time.Hour))
	seedShow(t, db, guns, venue, now.Add(2*time.Hour))
	seedShow(t, db, sax, venue, now.Add(-2*time.Hour))

	items, err := repo.SearchByName(ctx, "A", now)
	require.NoError(t, err)
	require.Len(t, items, 3)

	items, err = repo.SearchByName(ctx, "band", now)
	require.NoError(t, err)
	assert.Equal(t, []model.SearchItem{{ID: sax, Name: "The Wild Sax Band", NumUpcomingShows: 0}}, items)

	items, err = repo.SearchByName(ctx, "petals", now)
	require.NoError(t, err)
	assert.Equal(t, []model.SearchItem{{ID: guns, Name: "Guns N Petals", NumUpcomingShows: 2}}, items)
}

func TestArtistRepo_SearchByName_NonASCII(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewArtistRepo(db)
	ctx := context.Background()

	bjork := seedArtist(t, db, "BJÖRK Guðmundsdóttir")
	seedArtist(t, db, "Bjork Tribute")

	for _, term := range []string{"BJÖRK", "björk", "GUÐMUNDS"} {
		items, err := repo.SearchByName(ctx, term, now)
		require.NoError(t, err, term)
		require.Len(t, items, 1, term)
		assert.Equal(t, bjork, items[0].ID, term)
	}
}

func TestArtistRepo_ListShows(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewArtistRepo(db)
	ctx := context.Background()

	hop := seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	park := seedVenue(t, db, "Park Square Live Music & Coffee", "San Francisco", "CA")
	artist := seedArtist(t, db, "The Wild Sax Band")
	other := seedArtist(t, db, "Matt Quevedo")

	start := now.Add(24 * time.Hour)
	a := seedShow(t, db, artist, park, start)
	b := seedShow(t, db, artist, hop, start)
	c := seedShow(t, db, artist, hop, now.Add(-24*time.Hour))
	seedShow(t, db, other, hop, start)

	shows, err := repo.ListShows(ctx, artist)
	require.NoError(t, err)
	require.Len(t, shows, 3)
	assert.Equal(t, []uint64{c, a, b}, []uint64{shows[0].ShowID, shows[1].ShowID, shows[2].ShowID})
	assert.Equal(t, "Park Square Live Music & Coffee", shows[1].VenueName)
	assert.Equal(t, park, shows[1].VenueID)

	none, err := repo.ListShows(ctx, other+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}
