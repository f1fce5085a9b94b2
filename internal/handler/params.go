package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// paramID parses a numeric path parameter
func paramID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryDate parses an optional yyyy-mm-dd query parameter
func queryDate(c echo.Context, name string) *time.Time {
	value := c.QueryParam(name)
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}
