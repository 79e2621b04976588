package benchmark

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the history database and applies
// migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL,
		host TEXT NOT NULL,
		kind TEXT NOT NULL,
		headline REAL NOT NULL,
		details TEXT
	);
	`
	_, err := s.db.Exec(query)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(run Run) error {
	query := `INSERT INTO runs (created_at, host, kind, headline, details) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.Exec(query, run.Timestamp, run.Host, string(run.Kind), run.Headline, string(run.Details))
	return err
}

func (s *SQLiteStore) LoadAll() ([]Run, error) {
	query := `SELECT id, created_at, host, kind, headline, details FROM runs ORDER BY created_at ASC`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRuns(rows)
}

func (s *SQLiteStore) LoadLatest(kind Kind) (*Run, error) {
	query := `SELECT id, created_at, host, kind, headline, details FROM runs WHERE kind = ? ORDER BY created_at DESC LIMIT 1`
	rows, err := s.db.Query(query, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var (
			run     Run
			kind    string
			details sql.NullString
			created time.Time
		)
		if err := rows.Scan(&run.ID, &created, &run.Host, &kind, &run.Headline, &details); err != nil {
			return nil, err
		}
		run.Timestamp = created
		run.Kind = Kind(kind)
		if details.Valid {
			run.Details = []byte(details.String)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
