package covers

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
)

type handler struct {
	pipeline *Pipeline
}

func (h *handler) retrieve(c echo.Context) error {
	path := h.pipeline.Path(c.Param("filename"))

	if _, err := os.Stat(path); err != nil {
		return errcodes.NotFound("Cover")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return errors.WithStack(c.File(path))
}
