package openlibrary

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	client *Client
}

// search proxies the catalog search for the add-book picker.
func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	params := SearchQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	results, err := h.client.Search(ctx, params.Q)
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"results": results,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}
