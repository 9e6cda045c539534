package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixhub/internal/catalog"
	"fixhub/internal/render"
	"fixhub/pkg/models"
)

func TestBuildCard(t *testing.T) {
	t.Parallel()

	t.Run("fills seo fields and slug", func(t *testing.T) {
		t.Parallel()

		card := render.BuildCard(models.Entry{
			Brand:       "Whirlpool",
			Type:        "Washer",
			Code:        "F21",
			Issue:       "Long Drain Error",
			FixSummary:  "Clean drain pump filter",
			PartsNeeded: []string{"Drain Pump"},
		})

		assert.Equal(t, "Whirlpool Washer - F21", card.Heading)
		assert.Equal(t, "whirlpool-f21-error-fix", card.Slug)
		assert.Equal(t, "Whirlpool F21 Error Fix | Long Drain Error Repair Guide", card.PageTitle)
		assert.Equal(t, "How to fix Whirlpool Washer error F21. Diagnosis: Long Drain Error. Step-by-step DIY repair guide, parts list, and video help.", card.MetaDescription)
		assert.Equal(t, []string{"Drain Pump"}, card.Parts)
	})

	t.Run("nil parts become empty list", func(t *testing.T) {
		t.Parallel()

		card := render.BuildCard(models.Entry{Brand: "LG", Type: "Washer", Code: "OE"})

		assert.NotNil(t, card.Parts)
		assert.Empty(t, card.Parts)
	})

	t.Run("slug collapses punctuation and case", func(t *testing.T) {
		t.Parallel()

		card := render.BuildCard(models.Entry{Brand: "GE Café", Type: "Oven", Code: "F7-E1"})

		assert.Equal(t, "ge-caf-f7-e1-error-fix", card.Slug)
	})
}

func TestResolver(t *testing.T) {
	t.Parallel()

	newResolver := func() *render.Resolver {
		engine := catalog.NewEngine()
		engine.Load([]models.Entry{
			{Brand: "Whirlpool", Type: "Washer", Code: "F21", Issue: "Long Drain Error", FixSummary: "Clean drain pump"},
			{Brand: "LG", Type: "Washer", Code: "OE", Issue: "Drain Error", FixSummary: "Check drain hose"},
		})
		return render.NewResolver(engine)
	}

	t.Run("full triple takes exact path", func(t *testing.T) {
		t.Parallel()

		card, ok := newResolver().Resolve(render.Selection{Brand: "LG", Type: "Washer", Code: "OE"})
		require.True(t, ok)
		assert.Equal(t, "OE", card.Code)
	})

	t.Run("exact path ignores the query field", func(t *testing.T) {
		t.Parallel()

		// Query would hit Whirlpool first, but the triple pins LG.
		card, ok := newResolver().Resolve(render.Selection{Brand: "LG", Type: "Washer", Code: "OE", Query: "drain"})
		require.True(t, ok)
		assert.Equal(t, "LG", card.Brand)
	})

	t.Run("partial triple falls back to search", func(t *testing.T) {
		t.Parallel()

		card, ok := newResolver().Resolve(render.Selection{Brand: "LG", Query: "drain"})
		require.True(t, ok)
		assert.Equal(t, "F21", card.Code)
	})

	t.Run("missing triple and blank query is not found", func(t *testing.T) {
		t.Parallel()

		_, ok := newResolver().Resolve(render.Selection{Brand: "LG", Type: "Washer"})
		assert.False(t, ok)
	})

	t.Run("unknown triple is not found", func(t *testing.T) {
		t.Parallel()

		_, ok := newResolver().Resolve(render.Selection{Brand: "LG", Type: "Washer", Code: "XX"})
		assert.False(t, ok)
	})
}
