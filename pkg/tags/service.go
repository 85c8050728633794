package tags

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
	"github.com/tsundokuhq/tsundoku/pkg/models"
	"github.com/uptrace/bun"
)

type RetrieveTagOptions struct {
	ID   *string
	Name *string
}

type UpdateTagOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateTag(ctx context.Context, tag *models.Tag) error {
	if tag.ID == "" {
		tag.ID = fmt.Sprintf("tag_%d", time.Now().UnixMilli())
	}
	if tag.CreatedAt.IsZero() {
		tag.CreatedAt = time.Now()
	}
	tag.Name = strings.TrimSpace(tag.Name)

	_, err := svc.db.
		NewInsert().
		Model(tag).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveTag(ctx context.Context, opts RetrieveTagOptions) (*models.Tag, error) {
	tag := &models.Tag{}

	q := svc.db.
		NewSelect().
		Model(tag)

	if opts.ID != nil {
		q = q.Where("t.id = ?", *opts.ID)
	}
	if opts.Name != nil {
		q = q.Where("LOWER(t.name) = LOWER(?)", *opts.Name)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Tag")
		}
		return nil, errors.WithStack(err)
	}

	return tag, nil
}

func (svc *Service) ListTags(ctx context.Context) ([]*models.Tag, error) {
	tags := []*models.Tag{}

	err := svc.db.
		NewSelect().
		Model(&tags).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tags, nil
}

func (svc *Service) UpdateTag(ctx context.Context, tag *models.Tag, opts UpdateTagOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	_, err := svc.db.
		NewUpdate().
		Model(tag).
		Column(opts.Columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

// DeleteTag removes the tag and detaches its ID from every book that carries
// it, so book rows never accumulate references to deleted tags.
func (svc *Service) DeleteTag(ctx context.Context, id string) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Tag)(nil)).
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
		return errcodes.NotFound("Tag")
	}

	books := []*models.Book{}
	err = svc.db.
		NewSelect().
		Model(&books).
		Column("b.id", "b.tags").
		Where("b.tags LIKE ?", "%"+id+"%").
		Scan(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, book := range books {
		ids := []string{}
		// A column that doesn't decode has nothing to detach.
		if err := json.Unmarshal([]byte(book.Tags), &ids); err != nil {
			continue
		}
		kept := make([]string, 0, len(ids))
		for _, tagID := range ids {
			if tagID != id {
				kept = append(kept, tagID)
			}
		}
		if len(kept) == len(ids) {
			continue
		}
		encoded, err := json.Marshal(kept)
		if err != nil {
			return errors.WithStack(err)
		}
		values := map[string]interface{}{
			"tags":       string(encoded),
			"updated_at": time.Now(),
		}
		_, err = svc.db.
			NewUpdate().
			Model(&values).
			TableExpr("books").
			Where("id = ?", book.ID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// Resolve maps tag IDs to tags, preserving input order. IDs that no longer
// exist are dropped silently; a book referencing a deleted tag is normal,
// not an error.
func (svc *Service) Resolve(ctx context.Context, ids []string) ([]*models.Tag, error) {
	resolved := []*models.Tag{}
	if len(ids) == 0 {
		return resolved, nil
	}

	tags := []*models.Tag{}
	err := svc.db.
		NewSelect().
		Model(&tags).
		Where("t.id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	byID := make(map[string]*models.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			resolved = append(resolved, t)
		}
	}

	return resolved, nil
}
