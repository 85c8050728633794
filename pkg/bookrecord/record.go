// Package bookrecord defines the canonical book record and the conversions
// between its stored form (flat columns, JSON-encoded text for containers)
// and its normalized in-memory form. Every handler and every consumer goes
// through this package; nothing else is allowed to parse stored columns.
package bookrecord

type Shelf string

const (
	ShelfWatchlist        Shelf = "watchlist"
	ShelfCurrentlyReading Shelf = "currentlyReading"
	ShelfRead             Shelf = "read"
)

// ParseShelf maps a stored shelf value to a Shelf. Anything unrecognized,
// including the empty string, falls back to the watchlist. Several call
// sites omit the shelf on insert and rely on this.
func ParseShelf(s string) Shelf {
	switch Shelf(s) {
	case ShelfWatchlist, ShelfCurrentlyReading, ShelfRead:
		return Shelf(s)
	}
	return ShelfWatchlist
}

// DefaultReadingMedium is the stored placeholder for books whose medium was
// never set.
const DefaultReadingMedium = "Not set"

// Identifier is a single industry identifier (ISBN_10, ISBN_13, ...).
type Identifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// Record is a fully-typed book record. Container fields are never nil; the
// optional scalar fields are nil when the stored column is absent.
type Record struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Authors             []string          `json:"authors"`
	ImageLinks          map[string]string `json:"imageLinks"`
	IndustryIdentifiers []Identifier      `json:"industryIdentifiers"`
	Highlights          []string          `json:"highlights"`
	Subjects            []string          `json:"subjects"`
	Tags                []string          `json:"tags"`
	PageCount           *int              `json:"pageCount,omitempty"`
	PublishedDate       *string           `json:"publishedDate,omitempty"`
	FullPublishDate     *string           `json:"fullPublishDate,omitempty"`
	Publisher           *string           `json:"publisher,omitempty"`
	Description         *string           `json:"bookDescription,omitempty"`
	StartedOn           *string           `json:"startedOn,omitempty"`
	FinishedOn          *string           `json:"finishedOn,omitempty"`
	ReadingMedium       string            `json:"readingMedium"`
	Shelf               Shelf             `json:"shelf"`
	HasHighlights       bool              `json:"hasHighlights"`
	ReadingProgress     int               `json:"readingProgress"`
}

// Thumbnail returns the thumbnail URL, if any.
func (r *Record) Thumbnail() string {
	return r.ImageLinks["thumbnail"]
}

// Raw is a stored row keyed by column name. Values are whatever the storage
// or transport layer produced: strings (possibly JSON-encoded), numbers,
// booleans, nil, or already-decoded containers.
type Raw map[string]any
