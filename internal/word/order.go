// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package word

import (
	"errors"
	"fmt"
	"sort"

	"github.com/petar-djukic/texindex/internal/frequency"
	"github.com/petar-djukic/texindex/pkg/types"
)

// ErrLookup wraps failures of the frequency lookup.
var ErrLookup = errors.New("frequency lookup failed")

// Order scores every word with l and returns the entries sorted by
// (frequency, word) ascending. Each word is looked up once.
func Order(ix *Index, l frequency.Lookup) ([]types.WordEntry, error) {
	entries := make([]types.WordEntry, 0, ix.Len())
	for word, occ := range ix.words {
		n, err := l.Frequency(word)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrLookup, word, err)
		}
		entries = append(entries, types.WordEntry{
			Word:        word,
			Frequency:   n,
			Occurrences: occ,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Frequency != entries[j].Frequency {
			return entries[i].Frequency < entries[j].Frequency
		}
		return entries[i].Word < entries[j].Word
	})
	return entries, nil
}
