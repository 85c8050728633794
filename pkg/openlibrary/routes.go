package openlibrary

import (
	"github.com/labstack/echo/v4"
	"github.com/tsundokuhq/tsundoku/pkg/auth"
	"github.com/tsundokuhq/tsundoku/pkg/config"
)

// RegisterRoutesWithGroup registers the catalog proxy routes on a
// pre-configured group. Lookups are only used by the admin add-book flow.
func RegisterRoutesWithGroup(g *echo.Group, cfg *config.Config, authMiddleware *auth.Middleware) {
	h := &handler{
		client: New(cfg),
	}

	g.GET("/search", h.search, authMiddleware.RequireAdmin)
}
