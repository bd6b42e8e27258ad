// Package store is the durable key-value record store backing the tracker.
// Each logical record (streak state, today's calories, goal, history,
// friends) is one JSON blob keyed by name in a single SQLite table.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite file at path and applies any
// pending migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	s := &Store{db: db}
	if err := s.applyMigrations(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the raw JSON value stored under key. The second return is
// false when the key has never been saved.
func (s *Store) Load(key string) (json.RawMessage, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load record %q: %w", key, err)
	}
	return json.RawMessage(value), true, nil
}

// Save serializes value as JSON and writes it under key, replacing any
// previous value.
func (s *Store) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", key, err)
	}
	_, err = s.db.Exec(`
INSERT INTO records(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP
`, key, string(raw))
	if err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}

// SaveAll writes several records in a single transaction, so related
// mutations (streak, ledger, history from one logged workout) land together
// or not at all.
func (s *Store) SaveAll(records map[string]any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	for key, value := range records {
		raw, err := json.Marshal(value)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("marshal record %q: %w", key, err)
		}
		if _, err := tx.Exec(`
INSERT INTO records(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP
`, key, string(raw)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save record %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}
