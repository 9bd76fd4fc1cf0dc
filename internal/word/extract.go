// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package word extracts candidate index words with surrounding context
// from LaTeX sources and renders them ordered by frequency, so an author
// can spot words that are indexed too often or not at all.
package word

import (
	"context"
	"fmt"
	"sort"

	"github.com/petar-djukic/texindex/internal/logger"
	"github.com/petar-djukic/texindex/internal/macro"
	"github.com/petar-djukic/texindex/internal/pattern"
	"github.com/petar-djukic/texindex/internal/source"
	"github.com/petar-djukic/texindex/pkg/types"
)

// DefaultFiles are the book sources scanned when no list is configured,
// in scan order.
var DefaultFiles = []string{
	"macros.tex",
	"front.tex",
	"preface.tex",
	"introduction.tex",
	"preliminaries.tex",
	"basics.tex",
	"logic.tex",
	"equivalences.tex",
	"induction.tex",
	"hits.tex",
	"hlevels.tex",
	"homotopy.tex",
	"categories.tex",
	"setmath.tex",
	"reals.tex",
	"formal.tex",
}

// DefaultExclusions extends the macro collector's list with the letter
// format configuration.
var DefaultExclusions = append(append([]string(nil), macro.DefaultExclusions...), "hott-letter.tex")

// Index maps each word key to its occurrences. Occurrences are appended in
// the order files are added and, within a file, in scan order.
type Index struct {
	words map[string][]types.Occurrence
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{words: make(map[string][]types.Occurrence)}
}

// Add scans the raw text of the named file and appends one occurrence per
// match.
func (ix *Index) Add(file, text string) error {
	matches, err := pattern.Excerpts(text)
	if err != nil {
		return fmt.Errorf("scanning words in %s: %w", file, err)
	}
	for _, m := range matches {
		key := pattern.CleanKey(m.Word)
		ix.words[key] = append(ix.words[key], types.Occurrence{
			Excerpt: pattern.Flatten(m.Text),
			File:    file,
			Offset:  m.Offset,
		})
	}
	return nil
}

// Len returns the number of distinct words.
func (ix *Index) Len() int {
	return len(ix.words)
}

// Occurrences returns the occurrences recorded for word.
func (ix *Index) Occurrences(word string) []types.Occurrence {
	return ix.words[word]
}

// Words returns all keys in ascending order.
func (ix *Index) Words() []string {
	keys := make([]string, 0, len(ix.words))
	for k := range ix.words {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Options configures Extract.
type Options struct {
	Exclude []string      // Exclusion files for the macro bookkeeping
	Logger  logger.Logger // Optional; defaults to a no-op logger
}

// Extract reads files in order and builds the word index. Each file's raw
// text also feeds a macro collector; the undefined macros are returned for
// diagnostics but play no part in the word report.
func Extract(ctx context.Context, r source.Reader, files []string, opts Options) (*Index, *macro.Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	ix := NewIndex()
	macros := macro.NewCollector(macro.Options{Exclude: opts.Exclude, Logger: log})

	for _, name := range files {
		text, err := r.ReadFile(ctx, name)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := macros.Add(name, text); err != nil {
			return nil, nil, err
		}
		before := ix.Len()
		if err := ix.Add(name, text); err != nil {
			return nil, nil, err
		}
		log.Logf("%s: %d new words", name, ix.Len()-before)
	}

	res := macros.Result()
	log.Logf("%d words, %d undefined macros", ix.Len(), len(res.Undefined()))
	return ix, res, nil
}
