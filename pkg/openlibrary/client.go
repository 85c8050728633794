package openlibrary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/tsundokuhq/tsundoku/pkg/bookrecord"
	"github.com/tsundokuhq/tsundoku/pkg/config"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
	"github.com/tsundokuhq/tsundoku/pkg/htmlutil"
)

const (
	searchLimit = 20
	// Works can list a lot of contributors; resolving each one is a separate
	// fetch, so cap it.
	maxAuthorFetches = 5
)

// Client talks to the OpenLibrary API.
type Client struct {
	baseURL    string
	coversURL  string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.OpenLibraryURL,
		coversURL: cfg.OpenLibraryCoversURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Description is either a bare string or a {"type": ..., "value": ...}
// object depending on the record; OpenLibrary uses both shapes.
type Description struct {
	Value string
}

func (d *Description) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Value = s
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.WithStack(err)
	}
	d.Value = obj.Value
	return nil
}

// SearchResult is one row of the catalog search proxy.
type SearchResult struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	Authors          []string `json:"authors"`
	FirstPublishYear *int     `json:"firstPublishYear,omitempty"`
	CoverURL         string   `json:"coverUrl,omitempty"`
	ISBNs            []string `json:"isbns,omitempty"`
}

type searchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	CoverID          *int     `json:"cover_i"`
	ISBN             []string `json:"isbn"`
}

type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

type authorRef struct {
	Author struct {
		Key string `json:"key"`
	} `json:"author"`
}

type workResponse struct {
	Title       string       `json:"title"`
	Description *Description `json:"description"`
	Subjects    []string     `json:"subjects"`
	Covers      []int        `json:"covers"`
	Authors     []authorRef  `json:"authors"`
}

type editionResponse struct {
	Title         string       `json:"title"`
	Description   *Description `json:"description"`
	Publishers    []string     `json:"publishers"`
	PublishDate   string       `json:"publish_date"`
	NumberOfPages *int         `json:"number_of_pages"`
	Covers        []int        `json:"covers"`
	Authors       []struct {
		Key string `json:"key"`
	} `json:"authors"`
	ISBN10 []string `json:"isbn_10"`
	ISBN13 []string `json:"isbn_13"`
}

type authorResponse struct {
	Name string `json:"name"`
}

// Search queries the catalog and returns a trimmed result list suitable for
// the add-book picker.
func (c *Client) Search(ctx context.Context, query string) ([]*SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(searchLimit))

	response := searchResponse{}
	err := c.getJSON(ctx, "/search.json?"+q.Encode(), &response)
	if err != nil {
		return nil, err
	}

	results := make([]*SearchResult, 0, len(response.Docs))
	for _, doc := range response.Docs {
		result := &SearchResult{
			Key:              doc.Key,
			Title:            doc.Title,
			Authors:          doc.AuthorName,
			FirstPublishYear: doc.FirstPublishYear,
			ISBNs:            doc.ISBN,
		}
		if result.Authors == nil {
			result.Authors = []string{}
		}
		if doc.CoverID != nil {
			result.CoverURL = c.coverURL(*doc.CoverID, "M")
		}
		results = append(results, result)
	}
	return results, nil
}

// RetrieveWork fetches a work and resolves its author references into names,
// returning a normalized record ready for insert.
func (c *Client) RetrieveWork(ctx context.Context, workID string) (*bookrecord.Record, error) {
	work := workResponse{}
	err := c.getJSON(ctx, "/works/"+url.PathEscape(workID)+".json", &work)
	if err != nil {
		return nil, err
	}

	record := bookrecord.Normalize(bookrecord.Raw{})
	record.Title = work.Title
	record.Subjects = work.Subjects
	if record.Subjects == nil {
		record.Subjects = []string{}
	}
	if work.Description != nil && work.Description.Value != "" {
		desc := htmlutil.StripTags(work.Description.Value)
		record.Description = &desc
	}
	if len(work.Covers) > 0 {
		record.ImageLinks["thumbnail"] = c.coverURL(work.Covers[0], "L")
	}

	keys := make([]string, 0, len(work.Authors))
	for _, ref := range work.Authors {
		keys = append(keys, ref.Author.Key)
	}
	record.Authors, err = c.resolveAuthors(ctx, keys)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// RetrieveByISBN fetches an edition by ISBN.
func (c *Client) RetrieveByISBN(ctx context.Context, isbn string) (*bookrecord.Record, error) {
	edition := editionResponse{}
	err := c.getJSON(ctx, "/isbn/"+url.PathEscape(isbn)+".json", &edition)
	if err != nil {
		return nil, err
	}

	record := bookrecord.Normalize(bookrecord.Raw{})
	record.Title = edition.Title
	record.PageCount = edition.NumberOfPages
	if edition.Description != nil && edition.Description.Value != "" {
		desc := htmlutil.StripTags(edition.Description.Value)
		record.Description = &desc
	}
	if len(edition.Publishers) > 0 {
		record.Publisher = &edition.Publishers[0]
	}
	if edition.PublishDate != "" {
		record.PublishedDate = &edition.PublishDate
	}
	if len(edition.Covers) > 0 {
		record.ImageLinks["thumbnail"] = c.coverURL(edition.Covers[0], "L")
	}
	for _, id := range edition.ISBN10 {
		record.IndustryIdentifiers = append(record.IndustryIdentifiers, bookrecord.Identifier{Type: "ISBN_10", Identifier: id})
	}
	for _, id := range edition.ISBN13 {
		record.IndustryIdentifiers = append(record.IndustryIdentifiers, bookrecord.Identifier{Type: "ISBN_13", Identifier: id})
	}

	keys := make([]string, 0, len(edition.Authors))
	for _, ref := range edition.Authors {
		keys = append(keys, ref.Key)
	}
	record.Authors, err = c.resolveAuthors(ctx, keys)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// resolveAuthors turns author reference keys ("/authors/OL123A") into names
// with one fetch per author. Authors that fail to resolve are skipped.
func (c *Client) resolveAuthors(ctx context.Context, keys []string) ([]string, error) {
	names := []string{}
	for i, key := range keys {
		if i >= maxAuthorFetches {
			break
		}
		if key == "" {
			continue
		}
		author := authorResponse{}
		if err := c.getJSON(ctx, key+".json", &author); err != nil {
			continue
		}
		if author.Name != "" {
			names = append(names, author.Name)
		}
	}
	return names, nil
}

func (c *Client) coverURL(coverID int, size string) string {
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coversURL, coverID, size)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errcodes.NotFound("Book")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("catalog request failed: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to parse catalog response")
	}
	return nil
}
