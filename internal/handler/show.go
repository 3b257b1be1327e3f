package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fyyur/booking/internal/service"
)

// ShowHandler serves the /shows routes.
type ShowHandler struct {
	Shows *service.ShowService
}

// NewShowHandler constructs a ShowHandler and panics if svc is nil.
func NewShowHandler(svc *service.ShowService) *ShowHandler {
	if svc == nil {
		panic("nil service passed to NewShowHandler")
	}
	return &ShowHandler{Shows: svc}
}

// List returns every show with venue and artist names.
func (h *ShowHandler) List(c echo.Context) error {
	list, err := h.Shows.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": list})
}

// Create books an artist at a venue.
func (h *ShowHandler) Create(c echo.Context) error {
	var req showRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	s, err := h.Shows.Create(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      s.ID,
		"message": "Show was successfully listed!",
	})
}
