// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package texindex is the public interface for texindex, a pair of tools
// that help an author build the index of a LaTeX book: one lists macros
// that are used but never declared, the other lists candidate index words
// in context, ordered by how common they are.
package texindex

import (
	"errors"
	"io"
)

// Error types for the texindex API. All of them are fatal: a run that
// returns one has stopped, and output written so far may be partial.
var (
	ErrInvalidConfig        = errors.New("invalid config")
	ErrSourceUnreadable     = errors.New("source file unreadable")
	ErrFrequencyUnavailable = errors.New("frequency lookup unavailable")
	ErrInvalidFilter        = errors.New("invalid filter")
)

// Config configures an Indexer.
type Config struct {
	WorkDir        string    // Directory sources are read from (default ".")
	Rev            string    // Git revision to read sources from; empty reads the working tree
	FrequencyPath  string    // Frequency table (.tsv, .txt, .yaml, .yml, .db, .sqlite); required by Words unless Alphabetical
	Alphabetical   bool      // Words scores every word 0 and needs no frequency table
	Exclude        []string  // Exclusion files; nil uses each tool's default list
	Files          []string  // Files scanned by Words; nil uses the built-in book list
	MaxOccurrences int       // Excerpts printed per word by Words (default 1000)
	Log            io.Writer // Diagnostics; nil discards them
}

// MacroOptions selects the extra output of Macros.
type MacroOptions struct {
	Suggest   bool // Append the closest declared macro to each undefined one
	DumpWords bool // Print surface word forms after the macros
}
