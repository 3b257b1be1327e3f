package model

import "time"

// Venue represents a location that can host shows.  Each venue lives in a
// single (city, state) area and owns zero or more shows through
// shows.venue_id.  This struct corresponds to a row in the `venues` table.
//
// Fields:
//
//	ID                 – primary key identifier.
//	Name               – display name, searched case-insensitively.
//	City, State        – the area the venue is grouped under.
//	Address, Phone     – contact details.
//	ImageLink          – picture shown on the venue page.
//	FacebookLink       – optional social link.
//	WebsiteLink        – optional website.
//	Genres             – ordered list of genres, never NULL.
//	SeekingTalent      – whether the venue is looking for artists.
//	SeekingDescription – free-text pitch shown when SeekingTalent is set.
//	CreatedAt          – creation timestamp.
//	UpdatedAt          – last update timestamp.
type Venue struct {
	ID                 uint64    `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	WebsiteLink        string    `json:"website_link"`
	Genres             Genres    `json:"genres"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}

// VenueSummary is the short form of a venue used in area listings and
// search results.
type VenueSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueSummaryRow is a VenueSummary that still carries the area it was
// read from, before grouping.
type VenueSummaryRow struct {
	VenueSummary
	City  string
	State string
}

// Area groups the venues located in one (city, state) pair.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}
