// This file seeds the catalog from the embedded reference list on first
// attach. The CSV is generated from the curated crystal list; regenerate
// it whenever a new crystal is confirmed and added.
package catalog

import (
	"database/sql"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

//go:embed entries.csv
var entriesCSV string

// seed inserts the embedded reference entries into an empty crystals
// table. A non-empty table is left alone, so re-attaching an existing
// catalog is cheap and preserves assigned IDs.
func seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM crystals").Scan(&count); err != nil {
		return fmt.Errorf("count crystals: %w", err)
	}
	if count > 0 {
		return nil
	}

	records, err := csv.NewReader(strings.NewReader(entriesCSV)).ReadAll()
	if err != nil {
		return fmt.Errorf("parse embedded entries: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO crystals (crystal_id, hz, name, notes) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if i == 0 {
			// Header row.
			continue
		}
		if len(rec) != 3 {
			return fmt.Errorf("entries.csv row %d: want 3 fields, got %d", i, len(rec))
		}
		hz, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return fmt.Errorf("entries.csv row %d: bad frequency %q: %w", i, rec[0], err)
		}
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating UUID v7: %w", err)
		}
		if _, err := stmt.Exec(id.String(), hz, rec[1], rec[2]); err != nil {
			return fmt.Errorf("insert %v: %w", hz, err)
		}
	}

	return tx.Commit()
}
