// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package frequency provides word frequency scores used to order the word
// report. Scores come from a precomputed table: a TSV or YAML file, or a
// SQLite database.
package frequency

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=lookup.go -destination=mocks/lookup.gen.go -package=mocks

// Lookup maps a word to its frequency score.
type Lookup interface {
	// Frequency returns the score for word. Words the source does not
	// know score 0.
	Frequency(word string) (int, error)
}
