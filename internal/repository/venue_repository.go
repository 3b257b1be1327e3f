package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fyyur/booking/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
	website_link, genres, seeking_talent, seeking_description, created_at, updated_at`

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// DB exposes the underlying sql.DB so callers can begin transactions that
// span several repositories.
func (r *VenueRepo) DB() *sql.DB {
	return r.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(s rowScanner) (*model.Venue, error) {
	var v model.Venue
	err := s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.WebsiteLink, &v.Genres, &v.SeekingTalent, &v.SeekingDescription,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateTx inserts a new venue inside tx and assigns the generated ID back
// to v.  The caller must commit or roll back the transaction.
func (r *VenueRepo) CreateTx(ctx context.Context, tx *sql.Tx, v *model.Venue) error {
	const q = `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
	               website_link, genres, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.WebsiteLink, v.Genres, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no row
// is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	return getVenue(ctx, r.db, id)
}

func getVenue(ctx context.Context, q querier, id uint64) (*model.Venue, error) {
	v, err := scanVenue(q.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ExistsTx reports whether a venue with the given id exists, as seen from
// inside tx.
func (r *VenueRepo) ExistsTx(ctx context.Context, tx *sql.Tx, id uint64) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateTx overwrites every editable column of the venue identified by
// v.ID.  id and created_at are never touched.  It returns ErrVenueNotFound
// when the venue does not exist.
//
// Existence is checked explicitly because MySQL reports zero affected rows
// when an UPDATE leaves the values unchanged.
func (r *VenueRepo) UpdateTx(ctx context.Context, tx *sql.Tx, v *model.Venue) error {
	ok, err := r.ExistsTx(ctx, tx, v.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVenueNotFound
	}
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
	               facebook_link = ?, website_link = ?, genres = ?, seeking_talent = ?,
	               seeking_description = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	_, err = tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.WebsiteLink, v.Genres, v.SeekingTalent, v.SeekingDescription, v.ID)
	return err
}

// DeleteWithShowsTx removes a venue and every show booked at it.  Both
// deletes run on tx, so either both are visible after commit or neither
// is.  It returns the number of shows removed, or ErrVenueNotFound when the
// venue does not exist.
func (r *VenueRepo) DeleteWithShowsTx(ctx context.Context, tx *sql.Tx, id uint64) (int64, error) {
	ok, err := r.ExistsTx(ctx, tx, id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrVenueNotFound
	}
	// Shows reference the venue through venue_id; they go first so the
	// foreign key is never violated.
	res, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id)
	if err != nil {
		return 0, err
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return 0, err
	}
	return removed, nil
}

// ListSummaries returns every venue with its area and the number of shows
// starting strictly after now.  Rows are ordered by state, city, then id so
// callers can group them in a single pass.
func (r *VenueRepo) ListSummaries(ctx context.Context, now time.Time) ([]model.VenueSummaryRow, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
	           GROUP BY v.id, v.name, v.city, v.state
	           ORDER BY v.state, v.city, v.id`
	rows, err := r.db.QueryContext(ctx, q, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.VenueSummaryRow
	for rows.Next() {
		var row model.VenueSummaryRow
		if err := rows.Scan(&row.ID, &row.Name, &row.City, &row.State, &row.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName returns venues whose name contains term, ignoring case,
// together with their upcoming show counts.  Results are ordered by id.
// An empty term matches every venue; callers decide the empty-term policy.
func (r *VenueRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]model.SearchItem, error) {
	const q = `SELECT v.id, v.name, COUNT(s.id)
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > ?
	           WHERE LOWER(v.name) LIKE ? ESCAPE '!'
	           GROUP BY v.id, v.name
	           ORDER BY v.id`
	return scanSearchItems(r.db.QueryContext(ctx, q, now, containsPattern(term)))
}

// ListShows returns the shows booked at a venue joined with their artist,
// ordered by start time and then show id.
func (r *VenueRepo) ListShows(ctx context.Context, venueID uint64) ([]model.VenueShow, error) {
	const q = `SELECT s.id, a.id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC, s.id ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.VenueShow
	for rows.Next() {
		var vs model.VenueShow
		if err := rows.Scan(&vs.ShowID, &vs.ArtistID, &vs.ArtistName, &vs.ArtistImageLink, &vs.StartTime); err != nil {
			return nil, err
		}
		vs.StartTime = vs.StartTime.UTC()
		out = append(out, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSearchItems(rows *sql.Rows, err error) ([]model.SearchItem, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SearchItem{}
	for rows.Next() {
		var it model.SearchItem
		if err := rows.Scan(&it.ID, &it.Name, &it.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
