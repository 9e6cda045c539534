package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixhub/internal/source"
)

const catalogJSON = `[
	{"brand":"Whirlpool","type":"Washer","code":"F21","issue":"Long Drain Error","fix_summary":"Clean drain pump","parts_needed":["Drain Pump"]},
	{"brand":"Bosch","type":"Dishwasher","code":"E15","issue":"Water In Base","fix_summary":"Dry the base tray"},
	{"brand":"","type":"Washer","code":"XX","issue":"no brand, should be skipped"}
]`

func TestFile(t *testing.T) {
	t.Parallel()

	t.Run("parses entries and skips unkeyed records", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o644))

		entries, err := source.NewFile(path).FetchAll(context.Background())
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, "F21", entries[0].Code)
		assert.Equal(t, []string{"Drain Pump"}, entries[0].PartsNeeded)
		assert.Equal(t, "Bosch", entries[1].Brand)
		assert.Empty(t, entries[1].AffiliateLink)
	})

	t.Run("missing file errors", func(t *testing.T) {
		t.Parallel()

		_, err := source.NewFile(filepath.Join(t.TempDir(), "nope.json")).FetchAll(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed json errors", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o644))

		_, err := source.NewFile(path).FetchAll(context.Background())
		assert.Error(t, err)
	})
}

func TestHTTP(t *testing.T) {
	t.Parallel()

	t.Run("fetches and decodes the catalog", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(catalogJSON))
		}))
		defer srv.Close()

		entries, err := source.NewHTTP(srv.URL).FetchAll(context.Background())
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, "Whirlpool", entries[0].Brand)
	})

	t.Run("non-200 status errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := source.NewHTTP(srv.URL).FetchAll(context.Background())
		assert.Error(t, err)
	})
}
