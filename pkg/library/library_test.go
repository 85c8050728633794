package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsundokuhq/tsundoku/pkg/bookrecord"
)

func TestGroupBucketsByShelf(t *testing.T) {
	t.Parallel()

	lib := Group([]bookrecord.Raw{
		{"id": "w", "shelf": "watchlist"},
		{"id": "c", "shelf": "currentlyReading"},
		{"id": "r", "shelf": "read"},
	})

	require.Len(t, lib.Watchlist, 1)
	require.Len(t, lib.CurrentlyReading, 1)
	require.Len(t, lib.Read, 1)
	assert.Equal(t, "w", lib.Watchlist[0].ID)
	assert.Equal(t, "c", lib.CurrentlyReading[0].ID)
	assert.Equal(t, "r", lib.Read[0].ID)
}

func TestGroupDefaultsUnknownShelfToWatchlist(t *testing.T) {
	t.Parallel()

	lib := Group([]bookrecord.Raw{
		{"id": "a", "shelf": "bogus"},
		{"id": "b"},
	})

	require.Len(t, lib.Watchlist, 2)
	assert.Empty(t, lib.CurrentlyReading)
	assert.Empty(t, lib.Read)
}

func TestGroupSortsWatchlistByTitle(t *testing.T) {
	t.Parallel()

	lib := Group([]bookrecord.Raw{
		{"id": "1", "title": "Zen"},
		{"id": "2", "title": "Abacus"},
		{"id": "3", "title": "Moby"},
	})

	titles := []string{}
	for _, rec := range lib.Watchlist {
		titles = append(titles, rec.Title)
	}
	assert.Equal(t, []string{"Abacus", "Moby", "Zen"}, titles)
}

func TestGroupSortsReadByFinishedOnDescending(t *testing.T) {
	t.Parallel()

	lib := Group([]bookrecord.Raw{
		{"id": "old", "shelf": "read", "finished_on": "2022-01-01"},
		{"id": "undated-1", "shelf": "read"},
		{"id": "new", "shelf": "read", "finished_on": "2023-06-01"},
		{"id": "undated-2", "shelf": "read", "finished_on": "not a date"},
	})

	ids := []string{}
	for _, rec := range lib.Read {
		ids = append(ids, rec.ID)
	}
	// Dated records newest-first, undated at the end in input order.
	assert.Equal(t, []string{"new", "old", "undated-1", "undated-2"}, ids)
}

func TestGroupIsDeterministic(t *testing.T) {
	t.Parallel()

	raws := []bookrecord.Raw{
		{"id": "a", "shelf": "read"},
		{"id": "b", "shelf": "read"},
		{"id": "c", "shelf": "read", "finished_on": "2020-05-05"},
	}

	first := Group(raws)
	for range 5 {
		again := Group(raws)
		for i := range first.Read {
			assert.Equal(t, first.Read[i].ID, again.Read[i].ID)
		}
	}
}
