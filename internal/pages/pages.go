package pages

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"fixhub/internal/render"
	"fixhub/pkg/models"
)

//go:embed page.html.tmpl
var defaultTemplate string

// Generator writes one standalone repair page per catalog entry. Each
// page carries the entry's SEO title and meta description and a
// pre-selected card so it renders without any dropdown interaction.
type Generator struct {
	tmpl   *template.Template
	OutDir string
	// Assets are copied verbatim into OutDir so pages work standalone.
	Assets []string
}

type pageData struct {
	Card      models.Card
	Preselect template.JS
}

func NewGenerator(outDir string) (*Generator, error) {
	tmpl, err := template.New("page").Parse(defaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Generator{tmpl: tmpl, OutDir: outDir}, nil
}

// NewGeneratorFromFile uses a custom page template instead of the
// embedded one.
func NewGeneratorFromFile(outDir, templatePath string) (*Generator, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("parse page template %s: %w", templatePath, err)
	}
	return &Generator{tmpl: tmpl, OutDir: outDir}, nil
}

// Generate writes a page for every entry and returns how many were
// written. Filenames are slug-based: whirlpool-f21-error-fix.html.
func (g *Generator) Generate(entries []models.Entry) (int, error) {
	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return 0, fmt.Errorf("mkdir %s: %w", g.OutDir, err)
	}

	if err := g.copyAssets(); err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		card := render.BuildCard(entry)
		path := filepath.Join(g.OutDir, card.Slug+".html")

		f, err := os.Create(path)
		if err != nil {
			return count, fmt.Errorf("create %s: %w", path, err)
		}
		err = g.WritePage(f, card)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return count, fmt.Errorf("write %s: %w", path, err)
		}
		count++
	}
	return count, nil
}

// WritePage renders a single page for the given card.
func (g *Generator) WritePage(w io.Writer, card models.Card) error {
	preselect, err := preselectScript(card)
	if err != nil {
		return err
	}
	return g.tmpl.Execute(w, pageData{Card: card, Preselect: preselect})
}

func (g *Generator) copyAssets() error {
	for _, src := range g.Assets {
		b, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", src, err)
		}
		dst := filepath.Join(g.OutDir, filepath.Base(src))
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return fmt.Errorf("copy asset to %s: %w", dst, err)
		}
	}
	return nil
}
