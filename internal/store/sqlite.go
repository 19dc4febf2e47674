package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteDB implements DB on SQLite.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the database at path. ":memory:" is
// accepted for tests.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the schema if needed.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			layout TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			captures INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			claimed_pct REAL NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_layout_score ON results(layout, score DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at DESC)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveResult inserts r, filling ID and CreatedAt when empty.
func (s *SQLiteDB) SaveResult(r *Result) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO results
		(id, session_id, layout, seed, score, captures, ticks, claimed_pct, won, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.SessionID, r.Layout, r.Seed, r.Score, r.Captures, r.Ticks,
		r.ClaimedPercentage, r.Won, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// ListResults returns the newest results first.
func (s *SQLiteDB) ListResults(q ResultsQuery) ([]Result, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, session_id, layout, seed, score, captures, ticks, claimed_pct, won, created_at
		FROM results`
	args := []any{}
	if q.Layout != "" {
		query += ` WHERE layout = ?`
		args = append(args, q.Layout)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}
	return out, nil
}

// BestResult returns the highest-scoring result for layout, or nil when
// there is none.
func (s *SQLiteDB) BestResult(layout string) (*Result, error) {
	row := s.db.QueryRow(`SELECT id, session_id, layout, seed, score, captures, ticks, claimed_pct, won, created_at
		FROM results WHERE layout = ? ORDER BY score DESC, created_at ASC LIMIT 1`, layout)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (*Result, error) {
	var r Result
	if err := sc.Scan(&r.ID, &r.SessionID, &r.Layout, &r.Seed, &r.Score, &r.Captures,
		&r.Ticks, &r.ClaimedPercentage, &r.Won, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan result: %w", err)
	}
	return &r, nil
}
