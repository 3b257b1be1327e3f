package database

import (
	"time"

	"github.com/fyyur/booking/internal/model"
)

// DemoShow books DemoArtists[Artist] into DemoVenues[Venue].
type DemoShow struct {
	Artist    int
	Venue     int
	StartTime time.Time
}

// DemoVenues is the sample venue set loaded by the seed command.
var DemoVenues = []model.Venue{
	{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             model.Genres{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		WebsiteLink:        "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		Genres:       model.Genres{"Classical", "R&B", "Hip-Hop"},
		WebsiteLink:  "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		Genres:       model.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
		WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
	},
}

// DemoArtists is the sample artist set loaded by the seed command.
var DemoArtists = []model.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             model.Genres{"Rock n Roll"},
		WebsiteLink:        "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       model.Genres{"Jazz"},
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		Genres:    model.Genres{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

// DemoShows pairs the demo artists and venues.  Two shows are in the past,
// the rest far enough ahead to stay upcoming.
var DemoShows = []DemoShow{
	{Artist: 0, Venue: 0, StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{Artist: 1, Venue: 2, StartTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{Artist: 2, Venue: 2, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{Artist: 2, Venue: 2, StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{Artist: 2, Venue: 2, StartTime: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}
