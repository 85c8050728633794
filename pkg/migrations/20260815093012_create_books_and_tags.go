package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		// List-valued and map-valued columns (authors, subjects, tags,
		// image_links, industry_identifiers, highlights) are stored as JSON
		// text and decoded on read.
		_, err := db.Exec(`
			CREATE TABLE books (
				id TEXT PRIMARY KEY,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				title TEXT NOT NULL,
				authors TEXT NOT NULL DEFAULT '[]',
				image_links TEXT NOT NULL DEFAULT '{}',
				industry_identifiers TEXT NOT NULL DEFAULT '[]',
				highlights TEXT NOT NULL DEFAULT '[]',
				subjects TEXT NOT NULL DEFAULT '[]',
				tags TEXT NOT NULL DEFAULT '[]',
				page_count INTEGER,
				published_date TEXT,
				full_publish_date TEXT,
				publisher TEXT,
				book_description TEXT,
				started_on TEXT,
				finished_on TEXT,
				reading_medium TEXT NOT NULL DEFAULT 'Not set',
				shelf TEXT NOT NULL DEFAULT 'watchlist',
				has_highlights INTEGER NOT NULL DEFAULT 0,
				reading_progress INTEGER NOT NULL DEFAULT 0
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_shelf ON books (shelf)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE tags (
				id TEXT PRIMARY KEY,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL,
				color TEXT NOT NULL
			)
`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`DROP TABLE IF EXISTS tags`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`DROP INDEX IF EXISTS ix_books_shelf`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`DROP TABLE IF EXISTS books`)
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
