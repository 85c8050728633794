package covers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers the cover asset routes on a
// pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, pipeline *Pipeline) {
	h := &handler{
		pipeline: pipeline,
	}

	g.GET("/:filename", h.retrieve)
}
