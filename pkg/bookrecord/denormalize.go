package bookrecord

import (
	"github.com/segmentio/encoding/json"
)

// Patch is a partial update. Nil fields were not supplied by the caller and
// must not appear in the emitted Raw, so storage only touches the columns
// the caller named.
type Patch struct {
	Title               *string
	Authors             *[]string
	ImageLinks          *map[string]string
	IndustryIdentifiers *[]Identifier
	Highlights          *[]string
	Subjects            *[]string
	Tags                *[]string
	PageCount           *int
	PublishedDate       *string
	FullPublishDate     *string
	Publisher           *string
	Description         *string
	StartedOn           *string
	FinishedOn          *string
	ReadingMedium       *string
	Shelf               *Shelf
	HasHighlights       *bool
	ReadingProgress     *int
}

// Raw converts the patch to its stored form. Container fields are
// JSON-encoded to text; has_highlights is stored as 0/1. Only supplied
// fields are present in the result.
func (p Patch) Raw() Raw {
	raw := Raw{}
	if p.Title != nil {
		raw["title"] = *p.Title
	}
	if p.Authors != nil {
		raw["authors"] = encodeList(*p.Authors)
	}
	if p.ImageLinks != nil {
		raw["image_links"] = encodeMap(*p.ImageLinks)
	}
	if p.IndustryIdentifiers != nil {
		raw["industry_identifiers"] = encodeIdentifiers(*p.IndustryIdentifiers)
	}
	if p.Highlights != nil {
		raw["highlights"] = encodeList(*p.Highlights)
	}
	if p.Subjects != nil {
		raw["subjects"] = encodeList(*p.Subjects)
	}
	if p.Tags != nil {
		raw["tags"] = encodeList(*p.Tags)
	}
	if p.PageCount != nil {
		raw["page_count"] = *p.PageCount
	}
	if p.PublishedDate != nil {
		raw["published_date"] = *p.PublishedDate
	}
	if p.FullPublishDate != nil {
		raw["full_publish_date"] = *p.FullPublishDate
	}
	if p.Publisher != nil {
		raw["publisher"] = *p.Publisher
	}
	if p.Description != nil {
		raw["book_description"] = *p.Description
	}
	if p.StartedOn != nil {
		raw["started_on"] = *p.StartedOn
	}
	if p.FinishedOn != nil {
		raw["finished_on"] = *p.FinishedOn
	}
	if p.ReadingMedium != nil {
		raw["reading_medium"] = *p.ReadingMedium
	}
	if p.Shelf != nil {
		raw["shelf"] = string(ParseShelf(string(*p.Shelf)))
	}
	if p.HasHighlights != nil {
		raw["has_highlights"] = boolToInt(*p.HasHighlights)
	}
	if p.ReadingProgress != nil {
		raw["reading_progress"] = *p.ReadingProgress
	}
	return raw
}

// Denormalize converts a normalized record to the full stored column set,
// ready for insert. Like Normalize it is total; it never fails.
func Denormalize(r *Record) Raw {
	return Raw{
		"id":                   r.ID,
		"title":                r.Title,
		"authors":              encodeList(r.Authors),
		"image_links":          encodeMap(r.ImageLinks),
		"industry_identifiers": encodeIdentifiers(r.IndustryIdentifiers),
		"highlights":           encodeList(r.Highlights),
		"subjects":             encodeList(r.Subjects),
		"tags":                 encodeList(r.Tags),
		"page_count":           intOrNil(r.PageCount),
		"published_date":       stringOrNil(r.PublishedDate),
		"full_publish_date":    stringOrNil(r.FullPublishDate),
		"publisher":            stringOrNil(r.Publisher),
		"book_description":     stringOrNil(r.Description),
		"started_on":           stringOrNil(r.StartedOn),
		"finished_on":          stringOrNil(r.FinishedOn),
		"reading_medium":       stringValueDefault(r.ReadingMedium, DefaultReadingMedium),
		"shelf":                string(ParseShelf(string(r.Shelf))),
		"has_highlights":       boolToInt(r.HasHighlights),
		"reading_progress":     r.ReadingProgress,
	}
}

func encodeList(vals []string) string {
	if vals == nil {
		vals = []string{}
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func encodeMap(m map[string]string) string {
	if m == nil {
		m = map[string]string{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func encodeIdentifiers(ids []Identifier) string {
	if ids == nil {
		ids = []Identifier{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intOrNil(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
