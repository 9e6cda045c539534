package render

import (
	"fmt"
	"strings"

	"fixhub/pkg/models"
)

// BuildCard maps an Entry to its display card. Page title, meta
// description and slug follow the formats the generated repair pages
// use, so the live widget and the static pages agree on wording.
func BuildCard(e models.Entry) models.Card {
	parts := e.PartsNeeded
	if parts == nil {
		parts = []string{}
	}

	return models.Card{
		Heading:         fmt.Sprintf("%s %s - %s", e.Brand, e.Type, e.Code),
		Brand:           e.Brand,
		Type:            e.Type,
		Code:            e.Code,
		Issue:           e.Issue,
		FixSummary:      e.FixSummary,
		Parts:           parts,
		AffiliateLink:   e.AffiliateLink,
		VideoGuide:      e.VideoGuide,
		Slug:            Slug(e),
		PageTitle:       fmt.Sprintf("%s %s Error Fix | %s Repair Guide", e.Brand, e.Code, e.Issue),
		MetaDescription: fmt.Sprintf("How to fix %s %s error %s. Diagnosis: %s. Step-by-step DIY repair guide, parts list, and video help.", e.Brand, e.Type, e.Code, e.Issue),
	}
}

// Slug builds the page filename stem for an entry, e.g.
// "whirlpool-f21-error-fix".
func Slug(e models.Entry) string {
	return slugify(e.Brand + "-" + e.Code + "-error-fix")
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "entry"
	}
	return out
}
