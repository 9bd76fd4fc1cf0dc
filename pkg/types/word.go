// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across texindex packages.
package types

// Occurrence is one place a candidate index word was found.
type Occurrence struct {
	Excerpt string // Match text with both context windows, newlines flattened
	File    string // Source file name as configured
	Offset  int    // Rune offset of the word within the file
}

// WordEntry is a grouped word ready for rendering.
type WordEntry struct {
	Word        string       // Lowercased key, hyphenation hints removed
	Frequency   int          // Score from the frequency lookup
	Occurrences []Occurrence // File order, then scan order
}
