package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/cache"
	"github.com/scribehq/scribe/internal/metrics"
)

// AdminHandler exposes operational hooks.
type AdminHandler struct {
	pageCache *cache.PageCache
}

func NewAdminHandler(pageCache *cache.PageCache) *AdminHandler {
	return &AdminHandler{pageCache: pageCache}
}

func (h *AdminHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/admin/cache/clear/", h.ClearCache)
}

// ClearCache invalidates the rendered-page cache immediately, so new or
// deleted posts show on the front page without waiting for expiry.
func (h *AdminHandler) ClearCache(c echo.Context) error {
	h.pageCache.Clear()
	metrics.PageCacheClears.Inc()
	return c.Redirect(http.StatusFound, "/")
}
