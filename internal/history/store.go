// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a ledger of completed conversion runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdf2md/pkg/types"
)

const (
	// indexDir is the subdirectory under the output base for the ledger.
	indexDir = "index"
	dbFile   = "conversions.db"
)

const defaultListLimit = 20

// Store manages the conversion ledger SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at baseDir/index/conversions.db,
// creating the schema if it does not exist.
func Open(baseDir string) (*Store, error) {
	dir := filepath.Join(baseDir, indexDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			pages INTEGER NOT NULL,
			failed_pages INTEGER NOT NULL,
			status TEXT NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source_path)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one conversion record to the ledger.
func (s *Store) Record(ctx context.Context, rec types.ConversionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source_path, output_path, pages, failed_pages, status, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SourcePath, rec.OutputPath, rec.Pages, rec.FailedPages,
		string(rec.Status), rec.ConvertedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// List returns the most recent conversion records, newest first. A
// non-positive limit defaults to 20.
func (s *Store) List(ctx context.Context, limit int) ([]types.ConversionRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT source_path, output_path, pages, failed_pages, status, converted_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	var records []types.ConversionRecord
	for rows.Next() {
		var rec types.ConversionRecord
		var status, at string
		if err := rows.Scan(&rec.SourcePath, &rec.OutputPath, &rec.Pages,
			&rec.FailedPages, &status, &at); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec.Status = types.ConversionStatus(status)
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			rec.ConvertedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
