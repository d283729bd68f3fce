// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tuivoc/internal/known"
	"github.com/verte-zerg/tuivoc/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const knownWordsKey = "knownWords"

// Store wraps SQLite access for known words and rehearsal history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS rehearsals (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			total_seconds INTEGER NOT NULL,
			interval_seconds INTEGER NOT NULL,
			elapsed_seconds INTEGER NOT NULL,
			words_shown INTEGER NOT NULL,
			completed INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rehearsals_ended_at ON rehearsals(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// LoadKnownWords implements known.Store. Undecodable JSON is reported as
// known.ErrMalformedState.
func (s *Store) LoadKnownWords(ctx context.Context) ([]string, bool, error) {
	raw, found, err := s.Get(ctx, knownWordsKey)
	if err != nil || !found {
		return nil, found, err
	}
	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return nil, true, fmt.Errorf("%w: %v", known.ErrMalformedState, err)
	}
	if words == nil {
		words = []string{}
	}
	return words, true, nil
}

// SaveKnownWords implements known.Store.
func (s *Store) SaveKnownWords(ctx context.Context, words []string) error {
	if words == nil {
		words = []string{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	return s.Put(ctx, knownWordsKey, string(data))
}

// InsertRehearsal stores a finished rehearsal session.
func (s *Store) InsertRehearsal(ctx context.Context, rec model.RehearsalRecord) error {
	completed := 0
	if rec.Completed {
		completed = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rehearsals (id, started_at, ended_at, total_seconds, interval_seconds, elapsed_seconds, words_shown, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.TotalSeconds,
		rec.IntervalSeconds,
		rec.ElapsedSeconds,
		rec.WordsShown,
		completed,
	)
	return err
}

// ListRehearsals returns finished sessions oldest first, limited to the
// most recent last sessions when last > 0.
func (s *Store) ListRehearsals(ctx context.Context, last int) ([]model.RehearsalRecord, error) {
	query := `SELECT id, started_at, ended_at, total_seconds, interval_seconds, elapsed_seconds, words_shown, completed
		FROM rehearsals
		ORDER BY ended_at DESC`
	args := []any{}
	if last > 0 {
		query += ` LIMIT ?`
		args = append(args, last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.RehearsalRecord
	for rows.Next() {
		var rec model.RehearsalRecord
		var startedAt, endedAt string
		var completed int
		if err := rows.Scan(&rec.ID, &startedAt, &endedAt, &rec.TotalSeconds, &rec.IntervalSeconds, &rec.ElapsedSeconds, &rec.WordsShown, &completed); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		rec.Completed = completed == 1
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
