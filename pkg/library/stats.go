package library

import (
	"fmt"
	"sort"

	"github.com/tsundokuhq/tsundoku/pkg/bookrecord"
)

// UnknownYear is the bucket for read books whose finish date is absent or
// doesn't parse as a date.
const UnknownYear = "Unknown"

// unspecifiedMedium is the stats-facing label for books without a medium.
const unspecifiedMedium = "Not Specified"

// topAuthorCount caps authorStats to the most-read authors.
const topAuthorCount = 10

// BookSummary is the display-sized projection used in the per-year lists.
type BookSummary struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Authors       []string          `json:"authors"`
	ImageLinks    map[string]string `json:"imageLinks"`
	PageCount     *int              `json:"pageCount,omitempty"`
	FinishedOn    *string           `json:"finishedOn,omitempty"`
	ReadingMedium string            `json:"readingMedium"`
}

// AuthorBook is one finished book attributed to an author.
type AuthorBook struct {
	Title string `json:"title"`
	Year  string `json:"year"`
}

// AuthorStat is the per-author tally, ordered by count descending.
type AuthorStat struct {
	Name  string       `json:"name"`
	Count int          `json:"count"`
	Books []AuthorBook `json:"books"`
}

// Totals are the whole-shelf aggregates. AvgPerYear is rendered to one
// decimal place as a string, matching how it is displayed.
type Totals struct {
	Books      int    `json:"books"`
	Pages      int    `json:"pages"`
	AvgPerYear string `json:"avgPerYear"`
}

// Stats is everything computed from the read shelf.
type Stats struct {
	BooksByYear map[string][]BookSummary `json:"booksByYear"`
	AuthorStats []AuthorStat             `json:"authorStats"`
	MediumStats map[string]int           `json:"mediumStats"`
	Totals      Totals                   `json:"totals"`
}

// ComputeStats aggregates the read shelf. The average-per-year denominator
// counts the "Unknown" bucket as a year when undated books exist; that is
// the behavior every consumer of these numbers has always seen, so it stays.
func ComputeStats(read []*bookrecord.Record) *Stats {
	stats := &Stats{
		BooksByYear: map[string][]BookSummary{},
		AuthorStats: []AuthorStat{},
		MediumStats: map[string]int{},
	}

	authorOrder := []string{}
	authorBooks := map[string][]AuthorBook{}

	for _, rec := range read {
		year := finishedYear(rec)

		stats.BooksByYear[year] = append(stats.BooksByYear[year], BookSummary{
			ID:            rec.ID,
			Title:         rec.Title,
			Authors:       rec.Authors,
			ImageLinks:    rec.ImageLinks,
			PageCount:     rec.PageCount,
			FinishedOn:    rec.FinishedOn,
			ReadingMedium: rec.ReadingMedium,
		})

		for _, author := range rec.Authors {
			if _, seen := authorBooks[author]; !seen {
				authorOrder = append(authorOrder, author)
			}
			authorBooks[author] = append(authorBooks[author], AuthorBook{
				Title: rec.Title,
				Year:  year,
			})
		}

		medium := rec.ReadingMedium
		if medium == "" {
			medium = unspecifiedMedium
		}
		stats.MediumStats[medium]++

		stats.Totals.Books++
		if rec.PageCount != nil {
			stats.Totals.Pages += *rec.PageCount
		}
	}

	for _, name := range authorOrder {
		books := authorBooks[name]
		stats.AuthorStats = append(stats.AuthorStats, AuthorStat{
			Name:  name,
			Count: len(books),
			Books: books,
		})
	}
	sort.SliceStable(stats.AuthorStats, func(i, j int) bool {
		return stats.AuthorStats[i].Count > stats.AuthorStats[j].Count
	})
	if len(stats.AuthorStats) > topAuthorCount {
		stats.AuthorStats = stats.AuthorStats[:topAuthorCount]
	}

	stats.Totals.AvgPerYear = averagePerYear(stats.Totals.Books, len(stats.BooksByYear))

	return stats
}

func averagePerYear(books, yearBuckets int) string {
	if yearBuckets == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(books)/float64(yearBuckets))
}

func finishedYear(rec *bookrecord.Record) string {
	t, ok := finishedTime(rec)
	if !ok {
		return UnknownYear
	}
	return fmt.Sprintf("%04d", t.Year())
}
