package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fixhub/pkg/database"
	"fixhub/pkg/models"
	"fixhub/pkg/utils"
)

func main() {
	var (
		in = flag.String("in", "data/catalog.json", "input catalog path (.json or .csv)")
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

	var (
		entries []models.Entry
		err     error
	)
	switch strings.ToLower(filepath.Ext(*in)) {
	case ".csv":
		entries, err = readCSV(*in)
	default:
		entries, err = readJSON(*in)
	}
	if err != nil {
		log.Fatalf("read catalog failed: %v", err)
	}

	n, err := upsertEntries(ctx, db, entries)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("✅ imported %d error codes from %s", n, *in)
}

func readJSON(path string) ([]models.Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []models.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return entries, nil
}

// readCSV expects a header row; parts_needed is a semicolon-separated
// list inside one cell.
func readCSV(path string) ([]models.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	var entries []models.Entry
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		e := models.Entry{
			Brand:         valueAt(header, row, "brand"),
			Type:          valueAt(header, row, "type"),
			Code:          valueAt(header, row, "code"),
			Issue:         valueAt(header, row, "issue"),
			FixSummary:    valueAt(header, row, "fix_summary"),
			AffiliateLink: valueAt(header, row, "affiliate_link"),
			VideoGuide:    valueAt(header, row, "video_guide"),
		}
		if parts := valueAt(header, row, "parts_needed"); parts != "" {
			for _, p := range strings.Split(parts, ";") {
				if p = strings.TrimSpace(p); p != "" {
					e.PartsNeeded = append(e.PartsNeeded, p)
				}
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func upsertEntries(ctx context.Context, db *sql.DB, entries []models.Entry) (int, error) {
	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO error_codes (brand, type, code, issue, fix_summary, parts_needed, affiliate_link, video_guide)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(brand, type, code) DO UPDATE SET
		  issue = excluded.issue,
		  fix_summary = excluded.fix_summary,
		  parts_needed = excluded.parts_needed,
		  affiliate_link = excluded.affiliate_link,
		  video_guide = excluded.video_guide
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	for _, e := range entries {
		if e.Brand == "" || e.Type == "" || e.Code == "" {
			continue
		}

		partsJSON, err := json.Marshal(e.PartsNeeded)
		if err != nil {
			return n, fmt.Errorf("marshal parts for %s/%s/%s: %w", e.Brand, e.Type, e.Code, err)
		}

		if _, err := stmt.ExecContext(
			ctx,
			e.Brand,
			e.Type,
			e.Code,
			nullString(e.Issue),
			nullString(e.FixSummary),
			string(partsJSON),
			nullString(e.AffiliateLink),
			nullString(e.VideoGuide),
		); err != nil {
			return n, fmt.Errorf("upsert %s/%s/%s: %w", e.Brand, e.Type, e.Code, err)
		}
		n++
	}
	return n, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func nullString(raw string) sql.NullString {
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}
