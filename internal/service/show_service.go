package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fyyur/booking/internal/model"
	"github.com/fyyur/booking/internal/queue"
	"github.com/fyyur/booking/internal/repository"
)

const showFailure = "An error occurred. Requested show could not be listed."

// ShowService lists and books shows.
type ShowService struct {
	core
	shows   *repository.ShowRepo
	artists *repository.ArtistRepo
	venues  *repository.VenueRepo
}

// NewShowService builds a ShowService.  The artist and venue repositories
// are used to check references inside the booking transaction.
func NewShowService(shows *repository.ShowRepo, artists *repository.ArtistRepo, venues *repository.VenueRepo, opts Options) *ShowService {
	return &ShowService{core: newCore(shows.DB(), opts), shows: shows, artists: artists, venues: venues}
}

// List returns every show with its venue and artist names in booking
// order.
func (s *ShowService) List(ctx context.Context) ([]model.ShowListing, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	list, err := s.shows.ListAll(ctx)
	if err != nil {
		return nil, fromRepo("show.list", "An error occurred. Shows could not be listed.", err)
	}
	return list, nil
}

// Create books an artist at a venue.  Both must exist; the same artist,
// venue and start time cannot be booked twice.  The returned show is read
// back from the store after commit.
func (s *ShowService) Create(ctx context.Context, in ShowInput) (*model.Show, error) {
	const op = "show.create"
	if err := in.Validate(); err != nil {
		return nil, invalid(op, err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sh := &model.Show{
		ArtistID:  in.ArtistID,
		VenueID:   in.VenueID,
		StartTime: in.StartTime.UTC().Truncate(time.Second),
	}
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		ok, err := s.artists.ExistsTx(ctx, tx, sh.ArtistID)
		if err != nil {
			return err
		}
		if !ok {
			return invalidField(op, "artist_id", "artist does not exist")
		}
		ok, err = s.venues.ExistsTx(ctx, tx, sh.VenueID)
		if err != nil {
			return err
		}
		if !ok {
			return invalidField(op, "venue_id", "venue does not exist")
		}
		return s.shows.CreateTx(ctx, tx, sh)
	})
	if err != nil {
		return nil, fromRepo(op, showFailure, err)
	}

	s.publish(ctx, queue.NewEvent(queue.ShowCreated, sh.ID, "", s.clock()).
		With("artist_id", sh.ArtistID).
		With("venue_id", sh.VenueID).
		With("start_time", sh.StartTime.Format(time.RFC3339)))

	stored, err := s.shows.GetByID(ctx, sh.ID)
	if err != nil {
		log.Warn().Err(err).Uint64("show_id", sh.ID).Msg("reload created show")
		return sh, nil
	}
	return stored, nil
}
