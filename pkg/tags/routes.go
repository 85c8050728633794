package tags

import (
	"github.com/labstack/echo/v4"
	"github.com/tsundokuhq/tsundoku/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers tag routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		tagService: NewService(db),
	}

	g.GET("", h.list)
	g.POST("", h.create, authMiddleware.RequireAdmin)
	g.PATCH("/:id", h.update, authMiddleware.RequireAdmin)
	g.DELETE("/:id", h.deleteTag, authMiddleware.RequireAdmin)
}
