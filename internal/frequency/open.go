// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package frequency

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNoSource is returned by Open when no frequency source is named.
var ErrNoSource = errors.New("no frequency source configured")

// Source is a Lookup that holds resources until closed.
type Source interface {
	Lookup
	Close() error
}

// Open returns the frequency source stored at path. SQLite databases
// (.db, .sqlite, .sqlite3) are opened on the OS filesystem; other formats
// are loaded from fs into memory. An empty path is ErrNoSource.
func Open(fs afero.Fs, path string) (Source, error) {
	if path == "" {
		return nil, ErrNoSource
	}
	switch ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenStore(path)
	default:
		return LoadTable(fs, path)
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Memo caches the scores returned by an underlying Lookup, so the source
// is consulted once per distinct word.
type Memo struct {
	lookup Lookup
	cache  map[string]int
}

// NewMemo wraps l.
func NewMemo(l Lookup) *Memo {
	return &Memo{lookup: l, cache: make(map[string]int)}
}

// Frequency returns the cached score for word, asking the underlying
// Lookup on first use. Errors are not cached.
func (m *Memo) Frequency(word string) (int, error) {
	if n, ok := m.cache[word]; ok {
		return n, nil
	}
	n, err := m.lookup.Frequency(word)
	if err != nil {
		return 0, err
	}
	m.cache[word] = n
	return n, nil
}
