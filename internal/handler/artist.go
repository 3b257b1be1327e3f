package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fyyur/booking/internal/service"
)

// ArtistHandler serves the /artists routes.
type ArtistHandler struct {
	Artists *service.ArtistService
}

// NewArtistHandler constructs an ArtistHandler and panics if svc is nil.
func NewArtistHandler(svc *service.ArtistService) *ArtistHandler {
	if svc == nil {
		panic("nil service passed to NewArtistHandler")
	}
	return &ArtistHandler{Artists: svc}
}

func (h *ArtistHandler) List(c echo.Context) error {
	list, err := h.Artists.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": list})
}

func (h *ArtistHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.Artists.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":       res.Count,
		"data":        res.Data,
		"search_term": req.SearchTerm,
	})
}

func (h *ArtistHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	d, err := h.Artists.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *ArtistHandler) Create(c echo.Context) error {
	var req artistRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	a, err := h.Artists.Create(c.Request().Context(), req.input(true))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      a.ID,
		"message": fmt.Sprintf("Artist %s was successfully listed!", a.Name),
	})
}

func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	a, err := h.Artists.GetForm(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"artist": a})
}

func (h *ArtistHandler) Edit(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var req artistRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	a, err := h.Artists.Update(c.Request().Context(), id, req.input(false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  fmt.Sprintf("Artist %s was successfully edited!", a.Name),
		"redirect": fmt.Sprintf("/artists/%d", id),
	})
}
