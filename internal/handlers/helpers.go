package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/repositories"
)

// pageNumber reads the ?page query parameter. Anything unparsable falls
// back to the first page; out-of-range values are the paginator's
// problem (it clamps).
func pageNumber(c echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return n
}

// httpError translates repository errors into HTTP errors. ErrNotFound
// becomes a 404 handled by the rendered not-found page.
func httpError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return uint(id), nil
}
