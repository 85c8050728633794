package imports

import (
	"github.com/labstack/echo/v4"
	"github.com/tsundokuhq/tsundoku/pkg/auth"
)

// RegisterRoutesWithGroup registers the import routes on a pre-configured
// group.
func RegisterRoutesWithGroup(g *echo.Group, authMiddleware *auth.Middleware) {
	h := &handler{}

	g.POST("/highlights", h.importHighlights, authMiddleware.RequireAdmin)
}
