package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fyyur/booking/internal/model"
	"github.com/fyyur/booking/internal/queue"
	"github.com/fyyur/booking/internal/repository"
)

// ArtistService serves the artist pages.  Artists cannot be deleted.
type ArtistService struct {
	core
	artists *repository.ArtistRepo
}

// NewArtistService builds an ArtistService on top of repo.
func NewArtistService(repo *repository.ArtistRepo, opts Options) *ArtistService {
	return &ArtistService{core: newCore(repo.DB(), opts), artists: repo}
}

// List returns the id and name of every artist.
func (s *ArtistService) List(ctx context.Context) ([]model.ArtistSummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	list, err := s.artists.ListAll(ctx)
	if err != nil {
		return nil, fromRepo("artist.list", "An error occurred. Artists could not be listed.", err)
	}
	return list, nil
}

// Search finds artists whose name contains term, ignoring case.  A blank
// term matches nothing.
func (s *ArtistService) Search(ctx context.Context, term string) (model.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return model.SearchResult{Count: 0, Data: []model.SearchItem{}}, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items, err := s.artists.SearchByName(ctx, term, s.clock())
	if err != nil {
		return model.SearchResult{}, fromRepo("artist.search", "An error occurred. Search could not be completed.", err)
	}
	return model.SearchResult{Count: len(items), Data: items}, nil
}

// Get returns an artist with its shows split into past and upcoming.
func (s *ArtistService) Get(ctx context.Context, id uint64) (*model.ArtistDetail, error) {
	const op = "artist.get"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.clock()
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "An error occurred. Artist could not be shown.", err)
	}
	shows, err := s.artists.ListShows(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "An error occurred. Artist could not be shown.", err)
	}

	d := &model.ArtistDetail{Artist: *a, PastShows: []model.ArtistShow{}, UpcomingShows: []model.ArtistShow{}}
	for _, sh := range shows {
		if sh.StartTime.After(now) {
			d.UpcomingShows = append(d.UpcomingShows, sh)
		} else {
			d.PastShows = append(d.PastShows, sh)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d, nil
}

// GetForm returns the stored artist used to prefill the edit form.
func (s *ArtistService) GetForm(ctx context.Context, id uint64) (*model.Artist, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepo("artist.form", "An error occurred. Artist could not be loaded.", err)
	}
	return a, nil
}

// Create validates in and stores a new artist.
func (s *ArtistService) Create(ctx context.Context, in ArtistInput) (*model.Artist, error) {
	const op = "artist.create"
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return nil, invalid(op, err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a := in.toModel(0)
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.artists.CreateTx(ctx, tx, a)
	})
	if err != nil {
		return nil, fromRepo(op, fmt.Sprintf("An error occurred. Artist %s could not be listed.", in.Name), err)
	}

	s.publish(ctx, queue.NewEvent(queue.ArtistCreated, a.ID, a.Name, s.clock()))
	return a, nil
}

// Update overwrites every editable field of artist id with in.
func (s *ArtistService) Update(ctx context.Context, id uint64, in ArtistInput) (*model.Artist, error) {
	const op = "artist.update"
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return nil, invalid(op, err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a := in.toModel(id)
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.artists.UpdateTx(ctx, tx, a)
	})
	if err != nil {
		return nil, fromRepo(op, fmt.Sprintf("An error occurred. Artist %s could not be edited.", in.Name), err)
	}

	s.publish(ctx, queue.NewEvent(queue.ArtistUpdated, id, a.Name, s.clock()))
	return a, nil
}
