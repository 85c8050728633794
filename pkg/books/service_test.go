package books

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsundokuhq/tsundoku/pkg/bookrecord"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
	"github.com/tsundokuhq/tsundoku/pkg/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func newRecord(t *testing.T, raw bookrecord.Raw) *bookrecord.Record {
	t.Helper()
	return bookrecord.Normalize(raw)
}

func TestCreateAndRetrieveBook(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	record := newRecord(t, bookrecord.Raw{
		"title":   "Dune",
		"authors": `["Frank Herbert"]`,
		"shelf":   "read",
	})
	err := svc.CreateBook(ctx, record)
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)

	got, err := svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &record.ID})
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, []string{"Frank Herbert"}, got.Authors)
	assert.Equal(t, bookrecord.ShelfRead, got.Shelf)
	assert.NotNil(t, got.Highlights)
	assert.NotNil(t, got.ImageLinks)
}

func TestRetrieveBookNotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	id := "nope"
	_, err := svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.NotFound("Book")))
}

func TestListBooksShelfFilter(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateBook(ctx, newRecord(t, bookrecord.Raw{"title": "A", "shelf": "read"})))
	require.NoError(t, svc.CreateBook(ctx, newRecord(t, bookrecord.Raw{"title": "B", "shelf": "watchlist"})))
	require.NoError(t, svc.CreateBook(ctx, newRecord(t, bookrecord.Raw{"title": "C", "shelf": "read"})))

	all, err := svc.ListBooks(ctx, ListBooksOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	shelf := "read"
	read, err := svc.ListBooks(ctx, ListBooksOptions{Shelf: &shelf})
	require.NoError(t, err)
	require.Len(t, read, 2)
	for _, rec := range read {
		assert.Equal(t, bookrecord.ShelfRead, rec.Shelf)
	}
}

func TestUpdateBookOnlyTouchesPatchedColumns(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	record := newRecord(t, bookrecord.Raw{
		"title":       "Original",
		"authors":     `["Someone"]`,
		"page_count":  320,
		"shelf":       "currentlyReading",
		"finished_on": "2024-01-15",
	})
	require.NoError(t, svc.CreateBook(ctx, record))

	title := "Updated"
	got, err := svc.UpdateBook(ctx, record.ID, &bookrecord.Patch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Updated", got.Title)
	assert.Equal(t, []string{"Someone"}, got.Authors)
	require.NotNil(t, got.PageCount)
	assert.Equal(t, 320, *got.PageCount)
	assert.Equal(t, bookrecord.ShelfCurrentlyReading, got.Shelf)
	require.NotNil(t, got.FinishedOn)
	assert.Equal(t, "2024-01-15", *got.FinishedOn)
}

func TestUpdateBookEmptyPatch(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	record := newRecord(t, bookrecord.Raw{"title": "Unchanged"})
	require.NoError(t, svc.CreateBook(ctx, record))

	got, err := svc.UpdateBook(ctx, record.ID, &bookrecord.Patch{})
	require.NoError(t, err)
	assert.Equal(t, "Unchanged", got.Title)
}

func TestUpdateBookNotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	title := "x"
	_, err := svc.UpdateBook(ctx, "missing", &bookrecord.Patch{Title: &title})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.NotFound("Book")))
}

func TestSetHighlightsDerivesFlag(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	record := newRecord(t, bookrecord.Raw{"title": "Quotable"})
	require.NoError(t, svc.CreateBook(ctx, record))
	assert.False(t, record.HasHighlights)

	got, err := svc.SetHighlights(ctx, record.ID, []string{"one", "two"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got.Highlights)
	assert.True(t, got.HasHighlights)

	got, err = svc.SetHighlights(ctx, record.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Highlights)
	assert.False(t, got.HasHighlights)
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	record := newRecord(t, bookrecord.Raw{"title": "Gone"})
	require.NoError(t, svc.CreateBook(ctx, record))

	require.NoError(t, svc.DeleteBook(ctx, record.ID))

	_, err := svc.RetrieveBook(ctx, RetrieveBookOptions{ID: &record.ID})
	assert.True(t, errors.Is(err, errcodes.NotFound("Book")))

	err = svc.DeleteBook(ctx, record.ID)
	assert.True(t, errors.Is(err, errcodes.NotFound("Book")))
}
