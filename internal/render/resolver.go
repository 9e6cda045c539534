package render

import (
	"strings"

	"fixhub/internal/catalog"
	"fixhub/pkg/models"
)

// Selection is the state of the lookup widget: either all three
// dropdowns, or a free-text query.
type Selection struct {
	Brand string
	Type  string
	Code  string
	Query string
}

// Exact reports whether the selection names a full (brand, type, code)
// triple.
func (s Selection) Exact() bool {
	return s.Brand != "" && s.Type != "" && s.Code != ""
}

// Resolver is the single "render selection" entry point. UI event
// handlers and pre-selected static pages both go through Resolve:
// a full triple takes the exact lookup path, anything else falls back
// to first-match text search.
type Resolver struct {
	Engine *catalog.Engine
}

func NewResolver(engine *catalog.Engine) *Resolver {
	return &Resolver{Engine: engine}
}

func (r *Resolver) Resolve(sel Selection) (*models.Card, bool) {
	if sel.Exact() {
		entry, ok := r.Engine.FindExact(sel.Brand, sel.Type, sel.Code)
		if !ok {
			return nil, false
		}
		card := BuildCard(*entry)
		return &card, true
	}

	if strings.TrimSpace(sel.Query) == "" {
		return nil, false
	}
	entry, ok := r.Engine.SearchText(sel.Query)
	if !ok {
		return nil, false
	}
	card := BuildCard(*entry)
	return &card, true
}
