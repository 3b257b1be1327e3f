package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// readOnly reports whether the request cannot change stored data.  Search
// forms are posted but only read.
func readOnly(c echo.Context) bool {
	switch c.Request().Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	route := c.Path()
	if route == "" {
		route = c.Request().URL.Path
	}
	return strings.HasSuffix(route, "/search")
}
