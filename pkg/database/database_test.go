package database

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsundokuhq/tsundoku/pkg/config"
)

func TestNewConnects(t *testing.T) {
	t.Parallel()

	cfg := config.NewForTest()
	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	var one int
	err = db.QueryRow("SELECT 1").Scan(&one)
	require.NoError(t, err)
	assert.Equal(t, 1, one)
}

// A file-backed database is required here; :memory: gives each connection its
// own database, so lock contention never happens.
func TestNewConcurrentWrites(t *testing.T) {
	t.Parallel()

	cfg := config.NewForTest()
	cfg.DatabaseFilePath = filepath.Join(t.TempDir(), "test.db")

	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE scratch (id INTEGER PRIMARY KEY AUTOINCREMENT, value TEXT NOT NULL)`)
	require.NoError(t, err)

	const workers = 8
	const writes = 25

	var wg sync.WaitGroup
	errs := make(chan error, workers*writes)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < writes; i++ {
				_, err := db.Exec("INSERT INTO scratch (value) VALUES (?)", fmt.Sprintf("w%d-%d", id, i))
				if err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent write failed: %v", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM scratch").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, workers*writes, count)
}
