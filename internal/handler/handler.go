// Package handler exposes the HTTP handlers for venues, artists and shows.
// Handlers bind and check the request, call the service layer and map
// service error kinds onto status codes.  Responses are always JSON.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/fyyur/booking/internal/repository"
	"github.com/fyyur/booking/internal/service"
)

// parseID reads the numeric :id path parameter.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
}

func badRequest(c echo.Context, err error) error {
	msg := "invalid request body"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad_request", "message": msg})
}

func statusFor(k service.Kind) int {
	switch k {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindValidation:
		return http.StatusUnprocessableEntity
	case service.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a service failure.  Users only see the generic
// message; the cause and its persistence class go to the log.
func writeError(c echo.Context, err error) error {
	var se *service.Error
	if !errors.As(err, &se) {
		se = &service.Error{Kind: service.KindPersistence, Op: c.Path(), Message: "An unexpected error occurred.", Err: err}
	}
	status := statusFor(se.Kind)

	ev := log.Info()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(se.Err).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("op", se.Op).
		Str("kind", string(se.Kind)).
		Str("class", string(repository.Classify(se.Err))).
		Msg("request failed")

	body := echo.Map{"error": string(se.Kind), "message": se.Message}
	if len(se.Fields) > 0 {
		body["details"] = se.Fields
	}
	return c.JSON(status, body)
}
