package handler

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fyyur/booking/internal/service"
)

// checkbox accepts the values HTML forms send for a checked box ("y", "on")
// as well as plain booleans.  Request structs hold a *checkbox so an absent
// field can be told apart from an explicit false.
type checkbox bool

// or returns the submitted value, or def when the field was absent.
func (b *checkbox) or(def bool) bool {
	if b == nil {
		return def
	}
	return bool(*b)
}

func (b *checkbox) UnmarshalParam(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on", "true", "1":
		*b = true
	case "", "n", "no", "off", "false", "0":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %q", s)
	}
	return nil
}

func (b *checkbox) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = checkbox(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid boolean %s", data)
	}
	return b.UnmarshalParam(s)
}

// startTimeLayouts are tried in order.  Layouts without a zone are read as
// UTC.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// timestamp is a start time given either as RFC 3339 or as a zone-less
// "2006-01-02 15:04:05".
type timestamp time.Time

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start_time %q", s)
}

func (t *timestamp) UnmarshalParam(s string) error {
	if strings.TrimSpace(s) == "" {
		*t = timestamp{}
		return nil
	}
	parsed, err := parseTimestamp(s)
	if err != nil {
		return err
	}
	*t = timestamp(parsed)
	return nil
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid start_time %s", data)
	}
	return t.UnmarshalParam(s)
}

type venueRequest struct {
	Name               string    `json:"name" form:"name"`
	City               string    `json:"city" form:"city"`
	State              string    `json:"state" form:"state"`
	Address            string    `json:"address" form:"address"`
	Phone              string    `json:"phone" form:"phone"`
	ImageLink          string    `json:"image_link" form:"image_link"`
	FacebookLink       string    `json:"facebook_link" form:"facebook_link"`
	WebsiteLink        string    `json:"website_link" form:"website_link"`
	Genres             []string  `json:"genres" form:"genres"`
	SeekingTalent      *checkbox `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description" form:"seeking_description"`
}

// input converts the request.  seekingDefault is used when seeking_talent
// was not submitted: true on create, false on edit where an unchecked box
// is simply left out of the form.
func (r venueRequest) input(seekingDefault bool) service.VenueInput {
	return service.VenueInput{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              r.Phone,
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		WebsiteLink:        r.WebsiteLink,
		Genres:             r.Genres,
		SeekingTalent:      r.SeekingTalent.or(seekingDefault),
		SeekingDescription: r.SeekingDescription,
	}
}

type artistRequest struct {
	Name               string    `json:"name" form:"name"`
	City               string    `json:"city" form:"city"`
	State              string    `json:"state" form:"state"`
	Phone              string    `json:"phone" form:"phone"`
	Genres             []string  `json:"genres" form:"genres"`
	ImageLink          string    `json:"image_link" form:"image_link"`
	FacebookLink       string    `json:"facebook_link" form:"facebook_link"`
	WebsiteLink        string    `json:"website_link" form:"website_link"`
	SeekingVenue       *checkbox `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description" form:"seeking_description"`
}

// input converts the request; see venueRequest.input for seekingDefault.
func (r artistRequest) input(seekingDefault bool) service.ArtistInput {
	return service.ArtistInput{
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Phone:              r.Phone,
		Genres:             r.Genres,
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		WebsiteLink:        r.WebsiteLink,
		SeekingVenue:       r.SeekingVenue.or(seekingDefault),
		SeekingDescription: r.SeekingDescription,
	}
}

type showRequest struct {
	ArtistID  uint64    `json:"artist_id" form:"artist_id"`
	VenueID   uint64    `json:"venue_id" form:"venue_id"`
	StartTime timestamp `json:"start_time" form:"start_time"`
}

func (r showRequest) input() service.ShowInput {
	return service.ShowInput{
		ArtistID:  r.ArtistID,
		VenueID:   r.VenueID,
		StartTime: time.Time(r.StartTime),
	}
}

type searchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}
