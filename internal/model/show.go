package model

import "time"

// Show is the join entity correlating exactly one artist and one venue at
// one point in time.  StartTime is always stored and compared in UTC.
type Show struct {
	ID        uint64    `json:"id"`
	ArtistID  uint64    `json:"artist_id"`
	VenueID   uint64    `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"-"`
}

// ShowListing is a show enriched with the names of its venue and artist,
// as rendered on the shows page.
type ShowListing struct {
	ID              uint64    `json:"id"`
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShow is a show seen from an artist page: it carries the venue side
// of the join.
type ArtistShow struct {
	ShowID         uint64    `json:"-"`
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenueShow is a show seen from a venue page: it carries the artist side
// of the join.
type VenueShow struct {
	ShowID          uint64    `json:"-"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistDetail is an artist record together with its shows split around
// the current instant.
type ArtistDetail struct {
	Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// VenueDetail is a venue record together with its shows split around the
// current instant.
type VenueDetail struct {
	Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// SearchResult is the response shape shared by venue and artist search.
type SearchResult struct {
	Count int          `json:"count"`
	Data  []SearchItem `json:"data"`
}

// SearchItem is one match in a SearchResult.
type SearchItem struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}
