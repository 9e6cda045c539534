package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"fixhub/internal/pages"
	"fixhub/internal/source"
	"fixhub/pkg/utils"
)

func main() {
	var (
		in       = flag.String("in", "data/catalog.json", "catalog JSON path or URL")
		outDir   = flag.String("out", "pages", "output directory")
		tmplPath = flag.String("template", "", "custom page template (optional)")
		assets   = flag.String("assets", "", "comma-separated asset files to copy next to the pages")
	)
	flag.Parse()

	utils.LoadDotenv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var src source.Source
	if strings.HasPrefix(*in, "http://") || strings.HasPrefix(*in, "https://") {
		src = source.NewHTTP(*in)
	} else {
		src = source.NewFile(*in)
	}

	entries, err := src.FetchAll(ctx)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}

	var gen *pages.Generator
	if *tmplPath != "" {
		gen, err = pages.NewGeneratorFromFile(*outDir, *tmplPath)
	} else {
		gen, err = pages.NewGenerator(*outDir)
	}
	if err != nil {
		log.Fatalf("init generator: %v", err)
	}

	if *assets != "" {
		for _, a := range strings.Split(*assets, ",") {
			if a = strings.TrimSpace(a); a != "" {
				gen.Assets = append(gen.Assets, a)
			}
		}
	}

	count, err := gen.Generate(entries)
	if err != nil {
		log.Fatalf("generate pages: %v", err)
	}

	log.Printf("✅ generated %d pages in %s", count, *outDir)
}
