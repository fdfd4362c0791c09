package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/internalerr"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize schema
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	subject TEXT NOT NULL,
	created_at TEXT NOT NULL,
	word_count INTEGER DEFAULT 0,
	features TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id);
CREATE INDEX IF NOT EXISTS idx_records_subject ON records(subject);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertRecord inserts or updates a record
func (s *sqliteStore) UpsertRecord(ctx context.Context, r store.Record) error {
	featuresJSON, err := json.Marshal(r.Features)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO records (id, run_id, subject, created_at, word_count, features)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	run_id=excluded.run_id,
	subject=excluded.subject,
	created_at=excluded.created_at,
	word_count=excluded.word_count,
	features=excluded.features;
`, r.ID, r.RunID, r.Subject, r.CreatedAt.UTC().Format(time.RFC3339), r.WordCount, string(featuresJSON))
	return err
}

// GetRecord retrieves a record by ID
func (s *sqliteStore) GetRecord(ctx context.Context, id string) (store.Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, run_id, subject, created_at, word_count, features
FROM records
WHERE id = ?;
`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return store.Record{}, fmt.Errorf("record %s: %w", id, internalerr.ErrNotFound)
	}
	return rec, err
}

// GetRecordsByRun retrieves all records for a run.
// ULIDs sort chronologically, so ordering by id is insertion order.
func (s *sqliteStore) GetRecordsByRun(ctx context.Context, runID string) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, run_id, subject, created_at, word_count, features
FROM records
WHERE run_id = ?
ORDER BY id;
`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []store.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// AllSubjects returns the distinct subjects across all runs
func (s *sqliteStore) AllSubjects(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT subject FROM records ORDER BY subject;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var subject string
		if err := rows.Scan(&subject); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (store.Record, error) {
	var (
		rec      store.Record
		created  string
		features string
	)
	if err := row.Scan(&rec.ID, &rec.RunID, &rec.Subject, &created, &rec.WordCount, &features); err != nil {
		return store.Record{}, err
	}

	if created != "" {
		if parsed, perr := time.Parse(time.RFC3339, created); perr == nil {
			rec.CreatedAt = parsed
		}
	}
	if err := json.Unmarshal([]byte(features), &rec.Features); err != nil {
		return store.Record{}, err
	}
	return rec, nil
}
