package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fixhub/internal/source"
	"fixhub/pkg/database"
	"fixhub/pkg/models"
	"fixhub/pkg/utils"
)

func main() {
	var (
		csvOut  = flag.String("csv", "data/catalog.csv", "output CSV path (empty to skip)")
		jsonOut = flag.String("json", "data/catalog.json", "output JSON path (empty to skip)")
	)
	flag.Parse()

	utils.LoadDotenv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	entries, err := source.NewDB(db).FetchAll(ctx)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}

	if *csvOut != "" {
		if err := writeCSV(*csvOut, entries); err != nil {
			log.Fatalf("export csv failed: %v", err)
		}
		log.Printf("✅ exported %d error codes to %s", len(entries), *csvOut)
	}
	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, entries); err != nil {
			log.Fatalf("export json failed: %v", err)
		}
		log.Printf("✅ exported %d error codes to %s", len(entries), *jsonOut)
	}
}

func writeCSV(outPath string, entries []models.Entry) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"brand", "type", "code", "issue", "fix_summary", "parts_needed", "affiliate_link", "video_guide"}); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			e.Brand,
			e.Type,
			e.Code,
			e.Issue,
			e.FixSummary,
			strings.Join(e.PartsNeeded, ";"),
			e.AffiliateLink,
			e.VideoGuide,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func writeJSON(outPath string, entries []models.Entry) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, b, 0o644)
}
