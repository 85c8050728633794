package books

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/tsundokuhq/tsundoku/pkg/bookrecord"
	"github.com/tsundokuhq/tsundoku/pkg/covers"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
	"github.com/tsundokuhq/tsundoku/pkg/highlights"
	"github.com/tsundokuhq/tsundoku/pkg/library"
	"github.com/tsundokuhq/tsundoku/pkg/models"
	"github.com/tsundokuhq/tsundoku/pkg/openlibrary"
	"github.com/tsundokuhq/tsundoku/pkg/tags"
)

type handler struct {
	bookService *Service
	tagService  *tags.Service
	catalog     *openlibrary.Client
	covers      *covers.Pipeline
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := h.bookService.ListBooks(ctx, ListBooksOptions{})
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"library": library.GroupRecords(records),
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) stats(c echo.Context) error {
	ctx := c.Request().Context()

	shelf := string(bookrecord.ShelfRead)
	records, err := h.bookService.ListBooks(ctx, ListBooksOptions{Shelf: &shelf})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, library.ComputeStats(records)))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	record, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	// Dangling tag IDs are silently dropped here.
	resolved, err := h.tagService.Resolve(ctx, record.Tags)
	if err != nil {
		return errors.WithStack(err)
	}

	response := struct {
		*bookrecord.Record
		ResolvedTags []*models.Tag `json:"resolvedTags"`
	}{record, resolved}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	var record *bookrecord.Record
	var err error
	switch {
	case params.OLID != nil:
		record, err = h.catalog.RetrieveWork(ctx, *params.OLID)
	case params.ISBN != nil:
		record, err = h.catalog.RetrieveByISBN(ctx, *params.ISBN)
	default:
		if params.Title == nil || strings.TrimSpace(*params.Title) == "" {
			return errcodes.ValidationError(`"title" is required when no catalog key is supplied`)
		}
		record = bookrecord.Normalize(bookrecord.Raw{})
	}
	if err != nil {
		return errors.WithStack(err)
	}

	// Manual fields override whatever the catalog returned.
	if params.Title != nil {
		record.Title = strings.TrimSpace(*params.Title)
	}
	if params.Authors != nil {
		record.Authors = params.Authors
	}
	if params.PageCount != nil {
		record.PageCount = params.PageCount
	}
	if params.PublishedDate != nil {
		record.PublishedDate = params.PublishedDate
	}
	if params.Publisher != nil {
		record.Publisher = params.Publisher
	}
	if params.BookDescription != nil {
		record.Description = params.BookDescription
	}
	if params.ReadingMedium != nil {
		record.ReadingMedium = *params.ReadingMedium
	}
	if params.StartedOn != nil {
		record.StartedOn = params.StartedOn
	}
	if params.FinishedOn != nil {
		record.FinishedOn = params.FinishedOn
	}
	record.Shelf = bookrecord.ParseShelf(params.Shelf)

	// Cache the cover locally. This is best effort; the record keeps its
	// original catalog URL if the fetch fails.
	if thumb := record.Thumbnail(); thumb != "" && h.covers != nil {
		filename, err := h.covers.Fetch(ctx, thumb)
		if err != nil {
			log := logger.FromContext(ctx)
			log.Warn("failed to cache cover image", logger.Data{"url": thumb, "error": err.Error()})
		} else {
			record.ImageLinks["thumbnail"] = "/covers/" + filename
		}
	}

	if err := h.bookService.CreateBook(ctx, record); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, record))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	patch := &bookrecord.Patch{
		Title:           params.Title,
		Authors:         params.Authors,
		Subjects:        params.Subjects,
		Tags:            params.Tags,
		PageCount:       params.PageCount,
		PublishedDate:   params.PublishedDate,
		FullPublishDate: params.FullPublishDate,
		Publisher:       params.Publisher,
		Description:     params.BookDescription,
		StartedOn:       params.StartedOn,
		FinishedOn:      params.FinishedOn,
		ReadingMedium:   params.ReadingMedium,
		ReadingProgress: params.ReadingProgress,
	}
	if params.Shelf != nil {
		shelf := bookrecord.ParseShelf(*params.Shelf)
		patch.Shelf = &shelf
	}
	if params.ImageLinks != nil {
		// imageLinks arrives as raw JSON text from the edit form. This is a
		// write path, so bad JSON is the caller's mistake and gets a 422
		// instead of the read path's silent default.
		links := map[string]string{}
		if err := json.Unmarshal([]byte(*params.ImageLinks), &links); err != nil {
			return errcodes.InvalidJSON("imageLinks")
		}
		patch.ImageLinks = &links
	}

	record, err := h.bookService.UpdateBook(ctx, id, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, record))
}

func (h *handler) replaceHighlights(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := ReplaceHighlightsPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	var list []string
	switch {
	case params.Highlights != nil:
		list = *params.Highlights
	case params.Text != nil:
		list = highlights.SplitFreeText(*params.Text)
	default:
		return errcodes.ValidationError(`either "highlights" or "text" is required`)
	}

	record, err := h.bookService.SetHighlights(ctx, id, list)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, record))
}

func (h *handler) deleteBook(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.bookService.DeleteBook(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
