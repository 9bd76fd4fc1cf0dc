// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package frequency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `CREATE TABLE IF NOT EXISTS frequency (
	word  TEXT PRIMARY KEY,
	count INTEGER NOT NULL
)`

// Store is a frequency table kept in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path and ensures the schema.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema in %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Frequency returns the stored count for word, or 0 if it has none.
func (s *Store) Frequency(word string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT count FROM frequency WHERE word = ?", word).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("querying %q: %w", word, err)
	}
	return n, nil
}

// Put sets the count for word, replacing any previous value.
func (s *Store) Put(ctx context.Context, word string, count int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO frequency (word, count) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET count = excluded.count`, word, count)
	if err != nil {
		return fmt.Errorf("storing %q: %w", word, err)
	}
	return nil
}

// Import writes every entry of t in a single transaction and returns the
// number of words written.
func (s *Store) Import(ctx context.Context, t Table) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO frequency (word, count) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET count = excluded.count`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	words := make([]string, 0, len(t))
	for w := range t {
		words = append(words, w)
	}
	sort.Strings(words)

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w, t[w]); err != nil {
			return 0, fmt.Errorf("importing %q: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(words), nil
}

// Len returns the number of words in the store.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM frequency").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
