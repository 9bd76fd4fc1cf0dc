// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package texindex

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/petar-djukic/texindex/internal/frequency"
)

// ImportFrequencies loads a TSV or YAML table and writes it into the SQLite
// database at dbPath, creating it if needed. It returns the number of
// words written.
func ImportFrequencies(ctx context.Context, tablePath, dbPath string) (int, error) {
	tbl, err := frequency.LoadTable(afero.NewOsFs(), tablePath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFrequencyUnavailable, err)
	}

	store, err := frequency.OpenStore(dbPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFrequencyUnavailable, err)
	}
	defer store.Close()

	return store.Import(ctx, tbl)
}

// WordFrequency is one result of LookupFrequencies.
type WordFrequency struct {
	Word      string
	Frequency int
}

// LookupFrequencies returns the score of each word from the frequency source
// at path, in the order given. Repeated words are looked up once.
func LookupFrequencies(path string, words []string) ([]WordFrequency, error) {
	src, err := frequency.Open(afero.NewOsFs(), path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrequencyUnavailable, err)
	}
	defer src.Close()

	memo := frequency.NewMemo(src)
	out := make([]WordFrequency, 0, len(words))
	for _, w := range words {
		n, err := memo.Frequency(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrFrequencyUnavailable, w, err)
		}
		out = append(out, WordFrequency{Word: w, Frequency: n})
	}
	return out, nil
}
