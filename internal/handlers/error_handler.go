package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/middleware"
)

// HTTPErrorHandler renders the dedicated not-found page for 404s and a
// generic error page for everything else, instead of echo's JSON body.
func HTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	if c.Response().Committed {
		return
	}

	data := echo.Map{
		"Title": "Error",
		"User":  middleware.CurrentUser(c),
	}
	template := "error.html"
	if code == http.StatusNotFound {
		template = "not_found.html"
		data["Title"] = "Not found"
	}

	if renderErr := c.Render(code, template, data); renderErr != nil {
		c.Logger().Error(renderErr)
	}
}
