package service

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/fyyur/booking/internal/model"
)

var genreRule = validation.Each(validation.Required.Error("genre must not be blank"))

// VenueInput carries the editable fields of a venue.  It is used for both
// create and edit; an edit overwrites every field.
type VenueInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// Validate enforces the required fields and link formats.
func (in VenueInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required"), validation.Length(1, 120)),
		validation.Field(&in.City, validation.Required.Error("city is required"), validation.Length(1, 120)),
		validation.Field(&in.State, validation.Required.Error("state is required"), validation.Length(1, 120)),
		validation.Field(&in.Address, validation.Length(0, 120)),
		validation.Field(&in.Phone, validation.Required.Error("phone is required"), validation.Length(1, 120)),
		validation.Field(&in.Genres, validation.Required.Error("at least one genre is required"), genreRule),
		validation.Field(&in.ImageLink, validation.Length(0, 500), is.URL),
		validation.Field(&in.FacebookLink, validation.Length(0, 120), is.URL),
		validation.Field(&in.WebsiteLink, validation.Length(0, 120), is.URL),
		validation.Field(&in.SeekingDescription, validation.Length(0, 500)),
	)
}

// VenueInputFrom copies the editable fields of v.
func VenueInputFrom(v model.Venue) VenueInput {
	return VenueInput{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		Genres:             append([]string(nil), v.Genres...),
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

func (in VenueInput) normalized() VenueInput {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.WebsiteLink = strings.TrimSpace(in.WebsiteLink)
	in.Genres = trimAll(in.Genres)
	return in
}

func (in VenueInput) toModel(id uint64) *model.Venue {
	return &model.Venue{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		Genres:             model.Genres(in.Genres),
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
}

// ArtistInput carries the editable fields of an artist.
type ArtistInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// Validate enforces the required fields and link formats.
func (in ArtistInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required"), validation.Length(1, 120)),
		validation.Field(&in.City, validation.Required.Error("city is required"), validation.Length(1, 120)),
		validation.Field(&in.State, validation.Required.Error("state is required"), validation.Length(1, 120)),
		validation.Field(&in.Phone, validation.Required.Error("phone is required"), validation.Length(1, 120)),
		validation.Field(&in.Genres, validation.Required.Error("at least one genre is required"), genreRule),
		validation.Field(&in.ImageLink, validation.Length(0, 500), is.URL),
		validation.Field(&in.FacebookLink, validation.Length(0, 120), is.URL),
		validation.Field(&in.WebsiteLink, validation.Length(0, 120), is.URL),
		validation.Field(&in.SeekingDescription, validation.Length(0, 500)),
	)
}

// ArtistInputFrom copies the editable fields of a.
func ArtistInputFrom(a model.Artist) ArtistInput {
	return ArtistInput{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             append([]string(nil), a.Genres...),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

func (in ArtistInput) normalized() ArtistInput {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.WebsiteLink = strings.TrimSpace(in.WebsiteLink)
	in.Genres = trimAll(in.Genres)
	return in
}

func (in ArtistInput) toModel(id uint64) *model.Artist {
	return &model.Artist{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		Genres:             model.Genres(in.Genres),
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
}

// ShowInput books an artist at a venue.
type ShowInput struct {
	ArtistID  uint64    `json:"artist_id"`
	VenueID   uint64    `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// Validate checks that both ids are set and a start time was given.
func (in ShowInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ArtistID, validation.Required.Error("artist_id is required")),
		validation.Field(&in.VenueID, validation.Required.Error("venue_id is required")),
		validation.Field(&in.StartTime, validation.Required.Error("start_time is required")),
	)
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
