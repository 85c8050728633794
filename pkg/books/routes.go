package books

import (
	"github.com/labstack/echo/v4"
	"github.com/tsundokuhq/tsundoku/pkg/auth"
	"github.com/tsundokuhq/tsundoku/pkg/config"
	"github.com/tsundokuhq/tsundoku/pkg/covers"
	"github.com/tsundokuhq/tsundoku/pkg/openlibrary"
	"github.com/tsundokuhq/tsundoku/pkg/tags"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers book routes on a pre-configured group.
// Reads are public; mutations require the admin session.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, cfg *config.Config, authMiddleware *auth.Middleware) {
	h := &handler{
		bookService: NewService(db),
		tagService:  tags.NewService(db),
		catalog:     openlibrary.New(cfg),
		covers:      covers.NewPipeline(cfg),
	}

	g.GET("", h.list)
	g.GET("/stats", h.stats)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create, authMiddleware.RequireAdmin)
	g.PATCH("/:id", h.update, authMiddleware.RequireAdmin)
	g.PUT("/:id/highlights", h.replaceHighlights, authMiddleware.RequireAdmin)
	g.DELETE("/:id", h.deleteBook, authMiddleware.RequireAdmin)
}
