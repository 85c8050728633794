// Package library partitions book records into shelves and computes the
// derived reading statistics. It depends only on the normalized record type;
// all tolerance for messy stored data lives in bookrecord.
package library

import (
	"sort"
	"time"

	"github.com/tsundokuhq/tsundoku/pkg/bookrecord"
)

// Library is the shelf-partitioned view of the whole collection. Records
// with a missing or unrecognized shelf land in the watchlist.
type Library struct {
	Watchlist        []*bookrecord.Record `json:"watchlist"`
	CurrentlyReading []*bookrecord.Record `json:"currentlyReading"`
	Read             []*bookrecord.Record `json:"read"`
}

// Group normalizes every raw record, buckets by shelf, and sorts each
// bucket: watchlist and currentlyReading ascending by title, read descending
// by finish date. All sorts are stable, so repeated calls on identical input
// produce identical output.
func Group(raws []bookrecord.Raw) *Library {
	records := make([]*bookrecord.Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, bookrecord.Normalize(raw))
	}
	return GroupRecords(records)
}

// GroupRecords is Group for records that are already normalized.
func GroupRecords(records []*bookrecord.Record) *Library {
	lib := &Library{
		Watchlist:        []*bookrecord.Record{},
		CurrentlyReading: []*bookrecord.Record{},
		Read:             []*bookrecord.Record{},
	}

	for _, rec := range records {
		switch rec.Shelf {
		case bookrecord.ShelfCurrentlyReading:
			lib.CurrentlyReading = append(lib.CurrentlyReading, rec)
		case bookrecord.ShelfRead:
			lib.Read = append(lib.Read, rec)
		default:
			lib.Watchlist = append(lib.Watchlist, rec)
		}
	}

	sortByTitle(lib.Watchlist)
	sortByTitle(lib.CurrentlyReading)
	sortByFinishedOnDesc(lib.Read)

	return lib
}

func sortByTitle(records []*bookrecord.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Title < records[j].Title
	})
}

// sortByFinishedOnDesc orders most-recently-finished first. Records whose
// finish date is absent or unparseable go to the end, keeping their relative
// input order among themselves.
func sortByFinishedOnDesc(records []*bookrecord.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, oki := finishedTime(records[i])
		tj, okj := finishedTime(records[j])
		if oki && okj {
			return ti.After(tj)
		}
		// A dated record sorts before an undated one; two undated
		// records keep their input order.
		return oki && !okj
	})
}

// dateLayouts are the formats a finished_on column has been seen in.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

func finishedTime(rec *bookrecord.Record) (time.Time, bool) {
	if rec.FinishedOn == nil {
		return time.Time{}, false
	}
	return parseDate(*rec.FinishedOn)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
