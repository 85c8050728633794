// Package imports turns exported clippings files (markdown notes or Kindle
// HTML exports) into highlight lists the books API can store.
package imports

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tsundokuhq/tsundoku/pkg/highlights"
)

type handler struct{}

// importHighlights sniffs the clippings format and runs the matching
// extractor. Zero highlights is an empty result, not an error; the caller
// decides what to do with it.
func (h *handler) importHighlights(c echo.Context) error {
	params := ImportHighlightsPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	var extract *highlights.Extract
	if highlights.LooksLikeHTML(params.Text) {
		extract = highlights.ExtractFromHTML(params.Text)
	} else {
		extract = highlights.ExtractFromMarkdown(params.Text)
	}

	return errors.WithStack(c.JSON(http.StatusOK, extract))
}
