package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/tsundokuhq/tsundoku/pkg/bookrecord"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
	"github.com/tsundokuhq/tsundoku/pkg/models"
	"github.com/uptrace/bun"
)

type RetrieveBookOptions struct {
	ID *string
}

type ListBooksOptions struct {
	Shelf *string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateBook persists a normalized record. A missing ID is assigned here.
func (svc *Service) CreateBook(ctx context.Context, record *bookrecord.Record) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	now := time.Now()
	values := map[string]interface{}(bookrecord.Denormalize(record))
	values["created_at"] = now
	values["updated_at"] = now

	_, err := svc.db.
		NewInsert().
		Model(&values).
		TableExpr("books").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*bookrecord.Record, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book)

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book.Record(), nil
}

func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*bookrecord.Record, error) {
	books := []*models.Book{}

	q := svc.db.
		NewSelect().
		Model(&books).
		Order("created_at ASC")

	if opts.Shelf != nil {
		q = q.Where("b.shelf = ?", *opts.Shelf)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	records := make([]*bookrecord.Record, len(books))
	for i, b := range books {
		records[i] = b.Record()
	}
	return records, nil
}

// UpdateBook applies a partial update: only the columns present in the patch
// are written, everything else is left untouched.
func (svc *Service) UpdateBook(ctx context.Context, id string, patch *bookrecord.Patch) (*bookrecord.Record, error) {
	values := map[string]interface{}(patch.Raw())
	if len(values) == 0 {
		return svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
	}
	values["updated_at"] = time.Now()

	res, err := svc.db.
		NewUpdate().
		Model(&values).
		TableExpr("books").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if affected == 0 {
		return nil, errcodes.NotFound("Book")
	}

	return svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
}

// SetHighlights replaces the stored highlight list and keeps has_highlights
// in sync with it.
func (svc *Service) SetHighlights(ctx context.Context, id string, highlights []string) (*bookrecord.Record, error) {
	if highlights == nil {
		highlights = []string{}
	}
	encoded, err := json.Marshal(highlights)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	hasHighlights := 0
	if len(highlights) > 0 {
		hasHighlights = 1
	}

	values := map[string]interface{}{
		"highlights":     string(encoded),
		"has_highlights": hasHighlights,
		"updated_at":     time.Now(),
	}

	res, err := svc.db.
		NewUpdate().
		Model(&values).
		TableExpr("books").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if affected == 0 {
		return nil, errcodes.NotFound("Book")
	}

	return svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
}

func (svc *Service) DeleteBook(ctx context.Context, id string) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Book)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return errcodes.NotFound("Book")
	}
	return nil
}
