package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"fixhub/pkg/models"
)

// DB reads the catalog out of the error_codes table. Rows come back in
// insertion (rowid) order so first-seen semantics downstream match the
// order the catalog was imported in.
type DB struct {
	Conn *sql.DB
}

func NewDB(conn *sql.DB) *DB {
	return &DB{Conn: conn}
}

func (d *DB) Name() string { return "db" }

func (d *DB) FetchAll(ctx context.Context) ([]models.Entry, error) {
	rows, err := d.Conn.QueryContext(ctx, `
		SELECT brand, type, code, issue, fix_summary, parts_needed, affiliate_link, video_guide
		FROM error_codes
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query error_codes: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var (
			e             models.Entry
			issue         sql.NullString
			fixSummary    sql.NullString
			partsJSON     sql.NullString
			affiliateLink sql.NullString
			videoGuide    sql.NullString
		)

		if err := rows.Scan(&e.Brand, &e.Type, &e.Code, &issue, &fixSummary, &partsJSON, &affiliateLink, &videoGuide); err != nil {
			return nil, fmt.Errorf("scan error_codes: %w", err)
		}

		e.Issue = issue.String
		e.FixSummary = fixSummary.String
		e.AffiliateLink = affiliateLink.String
		e.VideoGuide = videoGuide.String
		if partsJSON.Valid && partsJSON.String != "" {
			_ = json.Unmarshal([]byte(partsJSON.String), &e.PartsNeeded)
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return clean(entries), nil
}
