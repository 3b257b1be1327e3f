package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fyyur/booking/internal/config"
	"github.com/fyyur/booking/internal/handler"
	"github.com/fyyur/booking/internal/queue"
	"github.com/fyyur/booking/internal/router"
	"github.com/fyyur/booking/internal/service"
)

// ServeCmd returns the serve command.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Start the booking API on APP_PORT.

When EVENTS_ENABLED is set, mutations are published to RabbitMQ and an
activity consumer appends them to ACTIVITY_LOG.  Redis caching and rate
limiting are enabled only when Redis answers at startup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer db.Close()

	var events service.EventPublisher = queue.NopPublisher{}
	if cfg.EventsEnabled {
		events = queue.NewPublisher(cfg.RabbitURL)
		go func() {
			if err := queue.StartActivityConsumer(ctx, cfg.RabbitURL, cfg.ActivityLog); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("activity consumer stopped")
			}
		}()
	}

	svcs := newServices(db, service.Options{Timeout: cfg.OperationTimeout, Events: events})
	e := router.New(router.Handlers{
		Venues:  handler.NewVenueHandler(svcs.Venues),
		Artists: handler.NewArtistHandler(svcs.Artists),
		Shows:   handler.NewShowHandler(svcs.Shows),
	}, router.Options{
		Redis:     config.NewRedisClient(cfg.Redis),
		Cache:     cfg.Cache,
		RateLimit: cfg.RateLimit,
	})

	addr := ":" + cfg.Port
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("driver", cfg.DBDriver).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
