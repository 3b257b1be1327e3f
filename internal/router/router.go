// Package router builds the echo instance and registers every route.
package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/fyyur/booking/internal/config"
	"github.com/fyyur/booking/internal/handler"
	"github.com/fyyur/booking/internal/middleware"
)

// Handlers groups the handlers RegisterRoutes wires up.
type Handlers struct {
	Venues  *handler.VenueHandler
	Artists *handler.ArtistHandler
	Shows   *handler.ShowHandler
}

// Options configures the Redis-backed middleware.  A nil Redis client
// disables both caching and rate limiting.
type Options struct {
	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
}

// New returns an echo instance with the middleware stack installed and all
// routes registered.
func New(h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(middleware.NewTokenBucket(opts.RateLimit, opts.Redis))
	e.Use(middleware.Sanitize())
	e.Use(middleware.NewRedisCache(opts.Cache, opts.Redis))

	RegisterRoutes(e, h)
	return e
}

// RegisterRoutes maps every route onto its handler.  Static segments such
// as /venues/create take precedence over /venues/:id.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Health)

	v := e.Group("/venues")
	v.GET("", h.Venues.List)
	v.POST("/search", h.Venues.Search)
	v.POST("/create", h.Venues.Create)
	v.GET("/:id", h.Venues.Get)
	v.DELETE("/:id", h.Venues.Delete)
	v.GET("/:id/edit", h.Venues.EditForm)
	v.POST("/:id/edit", h.Venues.Edit)

	a := e.Group("/artists")
	a.GET("", h.Artists.List)
	a.POST("/search", h.Artists.Search)
	a.POST("/create", h.Artists.Create)
	a.GET("/:id", h.Artists.Get)
	a.GET("/:id/edit", h.Artists.EditForm)
	a.POST("/:id/edit", h.Artists.Edit)

	s := e.Group("/shows")
	s.GET("", h.Shows.List)
	s.POST("/create", h.Shows.Create)
}
