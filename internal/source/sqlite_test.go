package source_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixhub/internal/source"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE error_codes (
			brand TEXT NOT NULL,
			type TEXT NOT NULL,
			code TEXT NOT NULL,
			issue TEXT,
			fix_summary TEXT,
			parts_needed TEXT,
			affiliate_link TEXT,
			video_guide TEXT,
			PRIMARY KEY (brand, type, code)
		)
	`)
	require.NoError(t, err)
	return db
}

func TestDBSource(t *testing.T) {
	t.Parallel()

	t.Run("reads entries in insertion order", func(t *testing.T) {
		t.Parallel()

		db := newTestDB(t)
		_, err := db.Exec(`
			INSERT INTO error_codes (brand, type, code, issue, fix_summary, parts_needed) VALUES
			('Whirlpool', 'Washer', 'F21', 'Long Drain Error', 'Clean drain pump', '["Drain Pump"]'),
			('Bosch', 'Dishwasher', 'E15', 'Water In Base', 'Dry the base tray', '[]')
		`)
		require.NoError(t, err)

		entries, err := source.NewDB(db).FetchAll(context.Background())
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, "Whirlpool", entries[0].Brand)
		assert.Equal(t, []string{"Drain Pump"}, entries[0].PartsNeeded)
		assert.Equal(t, "E15", entries[1].Code)
		assert.Empty(t, entries[1].PartsNeeded)
	})

	t.Run("null optional columns become empty strings", func(t *testing.T) {
		t.Parallel()

		db := newTestDB(t)
		_, err := db.Exec(`
			INSERT INTO error_codes (brand, type, code) VALUES ('LG', 'Washer', 'OE')
		`)
		require.NoError(t, err)

		entries, err := source.NewDB(db).FetchAll(context.Background())
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Empty(t, entries[0].Issue)
		assert.Empty(t, entries[0].AffiliateLink)
	})

	t.Run("empty table yields no entries", func(t *testing.T) {
		t.Parallel()

		entries, err := source.NewDB(newTestDB(t)).FetchAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
