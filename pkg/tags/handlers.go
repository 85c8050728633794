package tags

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tsundokuhq/tsundoku/pkg/models"
)

type handler struct {
	tagService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	tags, err := h.tagService.ListTags(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"tags": tags,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateTagPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	tag := &models.Tag{
		Name:  params.Name,
		Color: params.Color,
	}
	if err := h.tagService.CreateTag(ctx, tag); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, tag))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := UpdateTagPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	tag, err := h.tagService.RetrieveTag(ctx, RetrieveTagOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	columns := []string{}
	if params.Name != nil {
		tag.Name = strings.TrimSpace(*params.Name)
		columns = append(columns, "name")
	}
	if params.Color != nil {
		tag.Color = *params.Color
		columns = append(columns, "color")
	}

	err = h.tagService.UpdateTag(ctx, tag, UpdateTagOptions{Columns: columns})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, tag))
}

func (h *handler) deleteTag(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.tagService.DeleteTag(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
