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

// VenueService serves the venue pages: area listing, search, detail,
// create, edit and delete.
type VenueService struct {
	core
	venues *repository.VenueRepo
}

// NewVenueService builds a VenueService on top of repo.
func NewVenueService(repo *repository.VenueRepo, opts Options) *VenueService {
	return &VenueService{core: newCore(repo.DB(), opts), venues: repo}
}

// ListByArea groups every venue under its (city, state) pair.  Areas are
// ordered by state then city and venues within an area by id.  Each venue
// carries the number of its upcoming shows.
func (s *VenueService) ListByArea(ctx context.Context) ([]model.Area, error) {
	const op = "venue.list"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.venues.ListSummaries(ctx, s.clock())
	if err != nil {
		return nil, fromRepo(op, "An error occurred. Venues could not be listed.", err)
	}
	return groupByArea(rows), nil
}

// groupByArea folds rows that are already sorted by state and city into
// areas.
func groupByArea(rows []model.VenueSummaryRow) []model.Area {
	areas := []model.Area{}
	for _, r := range rows {
		n := len(areas)
		if n == 0 || areas[n-1].City != r.City || areas[n-1].State != r.State {
			areas = append(areas, model.Area{City: r.City, State: r.State, Venues: []model.VenueSummary{}})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, r.VenueSummary)
	}
	return areas
}

// Search finds venues whose name contains term, ignoring case.  A blank
// term matches nothing.
func (s *VenueService) Search(ctx context.Context, term string) (model.SearchResult, error) {
	const op = "venue.search"
	term = strings.TrimSpace(term)
	if term == "" {
		return model.SearchResult{Count: 0, Data: []model.SearchItem{}}, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items, err := s.venues.SearchByName(ctx, term, s.clock())
	if err != nil {
		return model.SearchResult{}, fromRepo(op, "An error occurred. Search could not be completed.", err)
	}
	return model.SearchResult{Count: len(items), Data: items}, nil
}

// Get returns a venue with its shows split into past and upcoming.
func (s *VenueService) Get(ctx context.Context, id uint64) (*model.VenueDetail, error) {
	const op = "venue.get"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.clock()
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "An error occurred. Venue could not be shown.", err)
	}
	shows, err := s.venues.ListShows(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "An error occurred. Venue could not be shown.", err)
	}

	d := &model.VenueDetail{Venue: *v, PastShows: []model.VenueShow{}, UpcomingShows: []model.VenueShow{}}
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

// GetForm returns the stored venue used to prefill the edit form.
func (s *VenueService) GetForm(ctx context.Context, id uint64) (*model.Venue, error) {
	const op = "venue.form"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepo(op, "An error occurred. Venue could not be loaded.", err)
	}
	return v, nil
}

// Create validates in and stores a new venue.
func (s *VenueService) Create(ctx context.Context, in VenueInput) (*model.Venue, error) {
	const op = "venue.create"
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return nil, invalid(op, err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	v := in.toModel(0)
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.venues.CreateTx(ctx, tx, v)
	})
	if err != nil {
		return nil, fromRepo(op, fmt.Sprintf("An error occurred. Venue %s could not be listed.", in.Name), err)
	}

	s.publish(ctx, queue.NewEvent(queue.VenueCreated, v.ID, v.Name, s.clock()))
	return v, nil
}

// Update overwrites every editable field of venue id with in.
func (s *VenueService) Update(ctx context.Context, id uint64, in VenueInput) (*model.Venue, error) {
	const op = "venue.update"
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return nil, invalid(op, err)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	v := in.toModel(id)
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.venues.UpdateTx(ctx, tx, v)
	})
	if err != nil {
		return nil, fromRepo(op, fmt.Sprintf("An error occurred. Venue %s could not be edited.", in.Name), err)
	}

	s.publish(ctx, queue.NewEvent(queue.VenueUpdated, id, v.Name, s.clock()))
	return v, nil
}

// Delete removes venue id and every show booked at it in one transaction.
// It returns the number of shows removed.
func (s *VenueService) Delete(ctx context.Context, id uint64) (int64, error) {
	const op = "venue.delete"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var removed int64
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		removed, err = s.venues.DeleteWithShowsTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return 0, fromRepo(op, "Venue was not deleted successfully.", err)
	}

	s.publish(ctx, queue.NewEvent(queue.VenueDeleted, id, "", s.clock()).With("shows_removed", removed))
	return removed, nil
}
