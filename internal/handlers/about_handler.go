package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/middleware"
)

// AboutHandler serves the static informational pages.
type AboutHandler struct{}

func NewAboutHandler() *AboutHandler {
	return &AboutHandler{}
}

func (h *AboutHandler) RegisterAboutRoutes(e *echo.Echo) {
	e.GET("/about/author/", h.Author)
	e.GET("/about/tech/", h.Tech)
}

func (h *AboutHandler) Author(c echo.Context) error {
	return c.Render(http.StatusOK, "about_author.html", echo.Map{
		"Title": "About the author",
		"User":  middleware.CurrentUser(c),
	})
}

func (h *AboutHandler) Tech(c echo.Context) error {
	return c.Render(http.StatusOK, "about_tech.html", echo.Map{
		"Title": "Technology",
		"User":  middleware.CurrentUser(c),
	})
}
