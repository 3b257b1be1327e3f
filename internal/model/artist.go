package model

import "time"

// Artist represents a performer that can be booked into shows.  An artist
// owns zero or more shows through shows.artist_id.  This struct corresponds
// to a row in the `artists` table.
type Artist struct {
	ID                 uint64    `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             Genres    `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	WebsiteLink        string    `json:"website_link"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}

// ArtistSummary is the short form of an artist used by the artist listing.
type ArtistSummary struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
