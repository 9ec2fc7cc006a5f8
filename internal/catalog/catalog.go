// Package catalog provides a queryable SQLite catalog of crystal
// documentation: the canonical name and usage notes recorded alongside
// each frequency in the curated reference list.
//
// The catalog is documentation only. The validator's compiled-in table is
// the single source of validation truth; the catalog never feeds it.
package catalog

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Catalog lifecycle errors.
var (
	ErrDetached        = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
	ErrNotFound        = errors.New("crystal not found in catalog")
)

// Entry is one documented crystal: its frequency in Hz, the canonical
// name from the reference list, and free-text usage notes.
type Entry struct {
	CrystalID string  `json:"crystal_id"`
	Hz        float64 `json:"hz"`
	Name      string  `json:"name"`
	Notes     string  `json:"notes"`
}

// Catalog wraps a SQLite database holding crystal documentation. Call
// Attach before use and Detach when done.
type Catalog struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// New creates a detached Catalog. Call Attach with a data directory to
// open the database.
func New() *Catalog {
	return &Catalog{}
}

// Attach opens (creating if necessary) the catalog database under dataDir
// and seeds it from the embedded reference list on first run. Returns
// ErrAlreadyAttached if called while attached.
func (c *Catalog) Attach(dataDir string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attached {
		return ErrAlreadyAttached
	}

	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open catalog db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	if err := seed(db); err != nil {
		db.Close()
		return fmt.Errorf("seed catalog: %w", err)
	}

	c.db = db
	c.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached catalog
// succeeds.
func (c *Catalog) Detach() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	c.attached = false
	if err != nil {
		return fmt.Errorf("close catalog db: %w", err)
	}
	return nil
}

// Lookup returns the entry whose frequency exactly equals hz.
// Returns ErrNotFound if the frequency is not documented.
func (c *Catalog) Lookup(hz float64) (*Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return nil, ErrDetached
	}

	row := c.db.QueryRow(
		"SELECT crystal_id, hz, name, notes FROM crystals WHERE hz = ?", hz,
	)
	var e Entry
	if err := row.Scan(&e.CrystalID, &e.Hz, &e.Name, &e.Notes); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up %v: %w", hz, err)
	}
	return &e, nil
}

// Search returns entries whose name or notes contain term,
// case-insensitively, ascending by frequency.
func (c *Catalog) Search(term string) ([]Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return nil, ErrDetached
	}

	pattern := "%" + term + "%"
	rows, err := c.db.Query(
		`SELECT crystal_id, hz, name, notes FROM crystals
		 WHERE name LIKE ? OR notes LIKE ? ORDER BY hz`, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", term, err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// All returns every catalog entry, ascending by frequency.
func (c *Catalog) All() ([]Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return nil, ErrDetached
	}

	rows, err := c.db.Query(
		"SELECT crystal_id, hz, name, notes FROM crystals ORDER BY hz",
	)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.CrystalID, &e.Hz, &e.Name, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
