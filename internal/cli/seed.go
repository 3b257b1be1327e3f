package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fyyur/booking/internal/database"
	"github.com/fyyur/booking/internal/service"
)

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo venues, artists and shows",
		Long: `Insert the demo dataset through the service layer, so every row passes
the same validation as an API request.  Run schema first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			res, err := seedDemo(cmd.Context(), newServices(db, service.Options{Timeout: cfg.OperationTimeout}))
			printSeed(res)
			return err
		},
	}
}

type seedResult struct {
	Venues  []string
	Artists []string
	Shows   int
}

// seedDemo creates the demo entities in order and stops at the first
// failure.  The result reports what was created before it.
func seedDemo(ctx context.Context, svcs services) (seedResult, error) {
	var res seedResult

	venueIDs := make([]uint64, 0, len(database.DemoVenues))
	for _, v := range database.DemoVenues {
		created, err := svcs.Venues.Create(ctx, service.VenueInputFrom(v))
		if err != nil {
			return res, fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
		venueIDs = append(venueIDs, created.ID)
		res.Venues = append(res.Venues, created.Name)
	}

	artistIDs := make([]uint64, 0, len(database.DemoArtists))
	for _, a := range database.DemoArtists {
		created, err := svcs.Artists.Create(ctx, service.ArtistInputFrom(a))
		if err != nil {
			return res, fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
		artistIDs = append(artistIDs, created.ID)
		res.Artists = append(res.Artists, created.Name)
	}

	for _, s := range database.DemoShows {
		_, err := svcs.Shows.Create(ctx, service.ShowInput{
			ArtistID:  artistIDs[s.Artist],
			VenueID:   venueIDs[s.Venue],
			StartTime: s.StartTime,
		})
		if err != nil {
			return res, fmt.Errorf("seed show: %w", err)
		}
		res.Shows++
	}
	return res, nil
}

func printSeed(res seedResult) {
	green := color.New(color.FgGreen).SprintFunc()
	for _, name := range res.Venues {
		fmt.Printf("  %s venue   %s\n", green("+"), name)
	}
	for _, name := range res.Artists {
		fmt.Printf("  %s artist  %s\n", green("+"), name)
	}
	fmt.Printf("%s %d venues, %d artists, %d shows\n",
		color.New(color.FgCyan).Sprint("Seeded"), len(res.Venues), len(res.Artists), res.Shows)
}
