// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a ledger of pipeline runs in a local SQLite
// database. The console stays the only reporting surface; the ledger is
// operational state for looking back at past runs, and recording is off
// unless a database path is configured.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	pages INTEGER NOT NULL,
	thumbs_generated INTEGER NOT NULL,
	thumbs_failed INTEGER NOT NULL,
	renamed INTEGER NOT NULL,
	skipped INTEGER NOT NULL,
	errored INTEGER NOT NULL,
	started_at TEXT NOT NULL
)`

// Run is one recorded pipeline run.
type Run struct {
	ID              int64
	Source          string
	Pages           int
	ThumbsGenerated int
	ThumbsFailed    int
	Renamed         int
	Skipped         int
	Errored         int
	StartedAt       time.Time
}

// Store manages the run ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at path, creating parent directories and
// the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening run ledger %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating run ledger schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run into the ledger.
func (s *Store) Record(r Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (source, pages, thumbs_generated, thumbs_failed, renamed, skipped, errored, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.Pages, r.ThumbsGenerated, r.ThumbsFailed,
		r.Renamed, r.Skipped, r.Errored,
		r.StartedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording run for %s: %w", r.Source, err)
	}
	return nil
}

// List returns up to limit runs, most recent first.
func (s *Store) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, source, pages, thumbs_generated, thumbs_failed, renamed, skipped, errored, started_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying run ledger: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.Source, &r.Pages, &r.ThumbsGenerated, &r.ThumbsFailed,
			&r.Renamed, &r.Skipped, &r.Errored, &started); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = ts
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run rows: %w", err)
	}

	return runs, nil
}
