// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package macro

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultSuggestThreshold is the lowest similarity Suggest reports.
const DefaultSuggestThreshold = 0.75

// Suggestion pairs an undefined macro with its closest declared one.
type Suggestion struct {
	Macro      string
	Closest    string
	Similarity float64
}

// Suggest finds, for each undefined macro, the most similar macro among
// declared. Macros with no candidate at or above threshold are left out.
// Ties go to the lexically smaller candidate.
func Suggest(undefined, declared []string, threshold float64) []Suggestion {
	var out []Suggestion
	for _, m := range undefined {
		best := Suggestion{Macro: m}
		for _, d := range declared {
			s := similarity(strings.TrimPrefix(m, `\`), strings.TrimPrefix(d, `\`))
			if s > best.Similarity || (s == best.Similarity && best.Closest != "" && d < best.Closest) {
				best.Closest = d
				best.Similarity = s
			}
		}
		if best.Closest != "" && best.Similarity >= threshold {
			out = append(out, best)
		}
	}
	return out
}

// similarity computes the Levenshtein-based similarity ratio between two
// strings. Returns a value between 0.0 and 1.0.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
