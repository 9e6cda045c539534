package pages_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixhub/internal/pages"
	"fixhub/internal/render"
	"fixhub/pkg/models"
)

func TestWritePage(t *testing.T) {
	t.Parallel()

	gen, err := pages.NewGenerator(t.TempDir())
	require.NoError(t, err)

	card := render.BuildCard(models.Entry{
		Brand:       "Whirlpool",
		Type:        "Washer",
		Code:        "F21",
		Issue:       "Long Drain Error",
		FixSummary:  "Clean drain pump filter",
		PartsNeeded: []string{"Drain Pump", "Hose Clamp"},
		VideoGuide:  "https://example.com/f21",
	})

	var buf bytes.Buffer
	require.NoError(t, gen.WritePage(&buf, card))
	html := buf.String()

	assert.Contains(t, html, "<title>Whirlpool F21 Error Fix | Long Drain Error Repair Guide</title>")
	assert.Contains(t, html, `content="How to fix Whirlpool Washer error F21. Diagnosis: Long Drain Error. Step-by-step DIY repair guide, parts list, and video help."`)
	assert.Contains(t, html, "<li>Drain Pump</li>")
	assert.Contains(t, html, "<li>Hose Clamp</li>")
	assert.Contains(t, html, `https://example.com/f21`)
	assert.Contains(t, html, `window.FIXHUB_PRESELECT = {"brand":"Whirlpool","type":"Washer","code":"F21"};`)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("writes one slugged page per entry", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		gen, err := pages.NewGenerator(outDir)
		require.NoError(t, err)

		count, err := gen.Generate([]models.Entry{
			{Brand: "Whirlpool", Type: "Washer", Code: "F21", Issue: "Long Drain Error"},
			{Brand: "Bosch", Type: "Dishwasher", Code: "E15", Issue: "Water In Base"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		assert.FileExists(t, filepath.Join(outDir, "whirlpool-f21-error-fix.html"))
		assert.FileExists(t, filepath.Join(outDir, "bosch-e15-error-fix.html"))
	})

	t.Run("copies assets alongside pages", func(t *testing.T) {
		t.Parallel()

		assetDir := t.TempDir()
		asset := filepath.Join(assetDir, "style.css")
		require.NoError(t, os.WriteFile(asset, []byte("body{}"), 0o644))

		outDir := t.TempDir()
		gen, err := pages.NewGenerator(outDir)
		require.NoError(t, err)
		gen.Assets = []string{asset}

		_, err = gen.Generate(nil)
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(outDir, "style.css"))
	})

	t.Run("missing asset fails", func(t *testing.T) {
		t.Parallel()

		gen, err := pages.NewGenerator(t.TempDir())
		require.NoError(t, err)
		gen.Assets = []string{filepath.Join(t.TempDir(), "missing.css")}

		_, err = gen.Generate(nil)
		assert.Error(t, err)
	})
}
