package source

import (
	"context"

	"fixhub/pkg/models"
)

// Source is implemented by each way of obtaining the catalog (local
// JSON file, remote catalog URL, database). A source fetches its own
// format and maps it into Entry records; the filter engine never deals
// with raw data.
type Source interface {
	Name() string
	FetchAll(ctx context.Context) ([]models.Entry, error)
}

// clean drops records a source could not map to a usable Entry.
// Missing optional fields are fine (they stay empty), but an entry
// without brand, type and code cannot be selected by the widget at
// all, so it is skipped here rather than polluting the catalog.
func clean(entries []models.Entry) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Brand == "" || e.Type == "" || e.Code == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
