package models

import (
	"time"

	"github.com/tsundokuhq/tsundoku/pkg/bookrecord"
	"github.com/uptrace/bun"
)

// Book is the storage shape of a book row. Container-valued columns (authors,
// image_links, industry_identifiers, highlights, subjects, tags) hold JSON
// text; callers go through Raw() and bookrecord.Normalize rather than reading
// them directly.
type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID                  string    `bun:",pk,nullzero" json:"id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	Title               string    `bun:",nullzero" json:"title"`
	Authors             string    `json:"authors"`
	ImageLinks          string    `json:"image_links"`
	IndustryIdentifiers string    `json:"industry_identifiers"`
	Highlights          string    `json:"highlights"`
	Subjects            string    `json:"subjects"`
	Tags                string    `json:"tags"`
	PageCount           *int      `json:"page_count"`
	PublishedDate       *string   `json:"published_date"`
	FullPublishDate     *string   `json:"full_publish_date"`
	Publisher           *string   `json:"publisher"`
	BookDescription     *string   `json:"book_description"`
	StartedOn           *string   `json:"started_on"`
	FinishedOn          *string   `json:"finished_on"`
	ReadingMedium       string    `json:"reading_medium"`
	Shelf               string    `bun:",nullzero" json:"shelf"`
	HasHighlights       int       `json:"has_highlights"`
	ReadingProgress     int       `json:"reading_progress"`
}

// Raw converts the stored row into the loosely-typed column map that
// bookrecord.Normalize accepts.
func (b *Book) Raw() bookrecord.Raw {
	raw := bookrecord.Raw{
		"id":                   b.ID,
		"title":                b.Title,
		"authors":              b.Authors,
		"image_links":          b.ImageLinks,
		"industry_identifiers": b.IndustryIdentifiers,
		"highlights":           b.Highlights,
		"subjects":             b.Subjects,
		"tags":                 b.Tags,
		"reading_medium":       b.ReadingMedium,
		"shelf":                b.Shelf,
		"has_highlights":       b.HasHighlights,
		"reading_progress":     b.ReadingProgress,
	}
	if b.PageCount != nil {
		raw["page_count"] = *b.PageCount
	}
	if b.PublishedDate != nil {
		raw["published_date"] = *b.PublishedDate
	}
	if b.FullPublishDate != nil {
		raw["full_publish_date"] = *b.FullPublishDate
	}
	if b.Publisher != nil {
		raw["publisher"] = *b.Publisher
	}
	if b.BookDescription != nil {
		raw["book_description"] = *b.BookDescription
	}
	if b.StartedOn != nil {
		raw["started_on"] = *b.StartedOn
	}
	if b.FinishedOn != nil {
		raw["finished_on"] = *b.FinishedOn
	}
	return raw
}

// Record normalizes the stored row.
func (b *Book) Record() *bookrecord.Record {
	return bookrecord.Normalize(b.Raw())
}
