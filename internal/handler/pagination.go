package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 100
	// maxPageLimit caps list responses; the limit query parameter is
	// clamped rather than rejected.
	maxPageLimit = 500
)

// pagination reads skip/limit query parameters with defaults. Negative or
// unparsable values fall back to the defaults.
func pagination(c echo.Context) (offset, limit int) {
	offset, limit = 0, defaultPageLimit
	if v, err := strconv.Atoi(c.QueryParam("skip")); err == nil && v > 0 {
		offset = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
	}
	return offset, limit
}
