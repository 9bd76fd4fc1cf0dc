// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package texindex

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/petar-djukic/texindex/internal/frequency"
	"github.com/petar-djukic/texindex/internal/word"
)

// Words scans the configured book files and writes the word report to w.
// Words are ordered by (frequency, word); only words matching one of
// filters (case-insensitive, anywhere in the word) are written. With no
// filters every word is written. A frequency table is required unless
// Config.Alphabetical is set.
func (ix *Indexer) Words(ctx context.Context, filters []string, w io.Writer) error {
	filter, err := word.NewFilter(filters)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	src, err := ix.frequencySource()
	if err != nil {
		return err
	}
	defer src.Close()

	files := ix.cfg.Files
	if files == nil {
		files = word.DefaultFiles
	}
	exclude := ix.cfg.Exclude
	if exclude == nil {
		exclude = word.DefaultExclusions
	}

	index, _, err := word.Extract(ctx, ix.reader, files, word.Options{
		Exclude: exclude,
		Logger:  ix.log,
	})
	if err != nil {
		return err
	}

	entries, err := word.Order(index, src)
	if err != nil {
		if errors.Is(err, word.ErrLookup) {
			return fmt.Errorf("%w: %w", ErrFrequencyUnavailable, err)
		}
		return err
	}

	stats, err := word.Render(w, entries, word.RenderConfig{
		MaxOccurrences: ix.cfg.MaxOccurrences,
		Filter:         filter,
	})
	if err != nil {
		return err
	}
	ix.log.Logf("%d of %d words shown, %d excerpts, %d omitted",
		stats.WordsShown, len(entries), stats.OccurrencesShown, stats.Omitted)
	return nil
}

// frequencySource opens the configured frequency table. In alphabetical
// mode every word scores 0 and no table is read.
func (ix *Indexer) frequencySource() (frequency.Source, error) {
	if ix.cfg.Alphabetical {
		return frequency.Table{}, nil
	}
	src, err := frequency.Open(afero.NewOsFs(), ix.cfg.FrequencyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrequencyUnavailable, err)
	}
	return src, nil
}
