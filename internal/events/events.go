package events

import "time"

const (
	TypeCatalogReload     = "catalog.reload"
	TypeCatalogLoadFailed = "catalog.load_failed"
)

// CatalogEvent is broadcast to connected clients whenever the catalog
// is swapped or a reload attempt fails. Static page hosts and CLIs use
// it to know when cached dropdown data is stale.
type CatalogEvent struct {
	Type    string    `json:"type"`
	Source  string    `json:"source,omitempty"`
	Entries int       `json:"entries,omitempty"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

func Reloaded(source string, entries int) CatalogEvent {
	return CatalogEvent{
		Type:    TypeCatalogReload,
		Source:  source,
		Entries: entries,
		At:      time.Now().UTC(),
	}
}

func LoadFailed(source string, err error) CatalogEvent {
	ev := CatalogEvent{
		Type:   TypeCatalogLoadFailed,
		Source: source,
		At:     time.Now().UTC(),
	}
	if err != nil {
		ev.Error = err.Error()
	}
	return ev
}
