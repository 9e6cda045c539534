package catalog

import (
	"sort"
	"strings"
	"sync"

	"fixhub/pkg/models"
)

// Engine is the in-memory catalog filter. It owns the loaded entry list
// and answers the cascading dropdown queries (brands, types per brand,
// codes per brand+type), the exact triple lookup, and first-match free
// text search.
//
// Load is the only mutator and swaps the whole slice behind the lock,
// so concurrent readers never see a partially updated catalog.
type Engine struct {
	mu      sync.RWMutex
	entries []models.Entry
}

func NewEngine() *Engine {
	return &Engine{}
}

// Load replaces the catalog wholesale. Entries are taken as given: no
// validation, duplicates tolerated (first-found wins on lookup).
func (e *Engine) Load(entries []models.Entry) {
	snapshot := make([]models.Entry, len(entries))
	copy(snapshot, entries)

	e.mu.Lock()
	e.entries = snapshot
	e.mu.Unlock()
}

// Len reports how many entries are loaded.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.entries)
}

// Loaded reports whether a non-empty catalog has been loaded.
func (e *Engine) Loaded() bool {
	return e.Len() > 0
}

// Brands returns the distinct brand values, deduplicated and sorted
// ascending. Empty catalog yields an empty slice.
func (e *Engine) Brands() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	seen := make(map[string]struct{}, len(e.entries))
	out := make([]string, 0, len(e.entries))
	for _, entry := range e.entries {
		if _, ok := seen[entry.Brand]; ok {
			continue
		}
		seen[entry.Brand] = struct{}{}
		out = append(out, entry.Brand)
	}
	sort.Strings(out)
	return out
}

// Types returns the distinct appliance types for a brand in first-seen
// catalog order. Dropdown population depends on that order, so it is
// deliberately not sorted. Unknown or blank brand yields an empty slice.
func (e *Engine) Types(brand string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0, 4)
	for _, entry := range e.entries {
		if entry.Brand != brand {
			continue
		}
		if _, ok := seen[entry.Type]; ok {
			continue
		}
		seen[entry.Type] = struct{}{}
		out = append(out, entry.Type)
	}
	return out
}

// Codes returns every entry matching brand and type, in catalog order.
// Duplicate codes are kept; display policy belongs to the caller.
func (e *Engine) Codes(brand, typ string) []models.Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.Entry, 0, 8)
	for _, entry := range e.entries {
		if entry.Brand == brand && entry.Type == typ {
			out = append(out, entry)
		}
	}
	return out
}

// FindExact returns the first entry matching the (brand, type, code)
// triple exactly, case-sensitive. This is the canonical lookup behind
// the dropdown-driven "show solution" path.
func (e *Engine) FindExact(brand, typ, code string) (*models.Entry, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, entry := range e.entries {
		if entry.Brand == brand && entry.Type == typ && entry.Code == code {
			found := entry
			return &found, true
		}
	}
	return nil, false
}

// SearchText scans the catalog in order and returns the first entry
// whose combined "brand code issue fix_summary" text contains the
// normalized (trimmed, lowercased) query as a substring. Queries
// shorter than 2 characters after trimming are rejected as too short
// to mean anything. First match wins; no ranking.
func (e *Engine) SearchText(query string) (*models.Entry, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return nil, false
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, entry := range e.entries {
		haystack := strings.ToLower(entry.Brand + " " + entry.Code + " " + entry.Issue + " " + entry.FixSummary)
		if strings.Contains(haystack, q) {
			found := entry
			return &found, true
		}
	}
	return nil, false
}
