package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fyyur/booking/internal/service"
)

// VenueHandler serves the /venues routes.
type VenueHandler struct {
	Venues *service.VenueService
}

// NewVenueHandler constructs a VenueHandler and panics if svc is nil.
func NewVenueHandler(svc *service.VenueService) *VenueHandler {
	if svc == nil {
		panic("nil service passed to NewVenueHandler")
	}
	return &VenueHandler{Venues: svc}
}

// List returns every venue grouped by (city, state).
func (h *VenueHandler) List(c echo.Context) error {
	areas, err := h.Venues.ListByArea(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": areas})
}

// Search matches venue names against search_term.
func (h *VenueHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.Venues.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":       res.Count,
		"data":        res.Data,
		"search_term": req.SearchTerm,
	})
}

// Get returns one venue with its past and upcoming shows.
func (h *VenueHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	d, err := h.Venues.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Create lists a new venue.
func (h *VenueHandler) Create(c echo.Context) error {
	var req venueRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	v, err := h.Venues.Create(c.Request().Context(), req.input(true))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      v.ID,
		"message": fmt.Sprintf("Venue %s was successfully listed!", v.Name),
	})
}

// Delete removes a venue and its shows.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	removed, err := h.Venues.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Venue was successfully deleted.",
		"shows_removed": removed,
		"redirect":      "/",
	})
}

// EditForm returns the stored venue for the edit form.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	v, err := h.Venues.GetForm(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"venue": v})
}

// Edit overwrites a venue with the submitted fields.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var req venueRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	v, err := h.Venues.Update(c.Request().Context(), id, req.input(false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  fmt.Sprintf("Venue %s was successfully edited!", v.Name),
		"redirect": fmt.Sprintf("/venues/%d", id),
	})
}
