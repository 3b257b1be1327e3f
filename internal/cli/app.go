// Package cli holds the cobra commands behind the server binary.
package cli

import (
	"database/sql"
	"fmt"

	"github.com/fyyur/booking/internal/config"
	"github.com/fyyur/booking/internal/database"
	"github.com/fyyur/booking/internal/logger"
	"github.com/fyyur/booking/internal/repository"
	"github.com/fyyur/booking/internal/service"
)

// services bundles the three services built over one database handle.
type services struct {
	Venues  *service.VenueService
	Artists *service.ArtistService
	Shows   *service.ShowService
}

func newServices(db *sql.DB, opts service.Options) services {
	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)
	return services{
		Venues:  service.NewVenueService(venues, opts),
		Artists: service.NewArtistService(artists, opts),
		Shows:   service.NewShowService(shows, artists, venues, opts),
	}
}

// bootstrap loads configuration, initialises logging and opens the
// database.  The caller closes the returned handle.
func bootstrap() (config.Config, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	db, err := database.Open(cfg.Database())
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, db, nil
}
