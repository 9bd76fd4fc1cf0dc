// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package word

import (
	"bufio"
	"fmt"
	"io"

	"github.com/petar-djukic/texindex/pkg/types"
)

// DefaultMaxOccurrences caps the excerpts printed per word.
const DefaultMaxOccurrences = 1000

// RenderConfig configures report rendering.
type RenderConfig struct {
	MaxOccurrences int     // Excerpts shown per word (default 1000; negative shows none)
	Filter         *Filter // Words to show (default all)
}

// RenderStats summarizes what Render wrote.
type RenderStats struct {
	WordsShown       int
	OccurrencesShown int
	Omitted          int
}

// Render writes the report for entries in the order given. Each word that
// passes the filter gets a banner with its frequency, up to MaxOccurrences
// excerpt lines and, when some were cut, a line with the omitted count.
func Render(w io.Writer, entries []types.WordEntry, cfg RenderConfig) (RenderStats, error) {
	maxOcc := cfg.MaxOccurrences
	switch {
	case maxOcc == 0:
		maxOcc = DefaultMaxOccurrences
	case maxOcc < 0:
		maxOcc = 0
	}
	filter := cfg.Filter
	if filter == nil {
		var err error
		if filter, err = NewFilter(nil); err != nil {
			return RenderStats{}, err
		}
	}

	var stats RenderStats
	bw := bufio.NewWriter(w)

	for _, e := range entries {
		ok, err := filter.Match(e.Word)
		if err != nil {
			return stats, fmt.Errorf("filtering %q: %w", e.Word, err)
		}
		if !ok {
			continue
		}

		fmt.Fprintf(bw, "\n\n======== %s [%d]\n\n\n", e.Word, e.Frequency)

		shown := e.Occurrences
		if len(shown) > maxOcc {
			shown = shown[:maxOcc]
		}
		for _, o := range shown {
			fmt.Fprintf(bw, "   ...%s... [%s @ %d]\n", o.Excerpt, o.File, o.Offset)
		}
		if omitted := len(e.Occurrences) - len(shown); omitted > 0 {
			fmt.Fprintf(bw, "\n   [[%d omitted occurrences]]\n", omitted)
			stats.Omitted += omitted
		}

		stats.WordsShown++
		stats.OccurrencesShown += len(shown)
	}

	return stats, bw.Flush()
}
