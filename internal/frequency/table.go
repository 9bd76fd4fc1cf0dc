// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package frequency

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrBadTable is returned when a frequency table cannot be parsed.
var ErrBadTable = errors.New("malformed frequency table")

// Table is an in-memory frequency table. The zero value is an empty table
// in which every word scores 0.
type Table map[string]int

// Frequency returns the score for word, or 0 if it is absent.
func (t Table) Frequency(word string) (int, error) {
	return t[word], nil
}

// Close is a no-op so that a Table can stand in for any Source.
func (t Table) Close() error { return nil }

// ReadTSV parses lines of "word<whitespace>count". Blank lines and lines
// starting with # are skipped. A word listed twice keeps its last count.
func ReadTSV(r io.Reader) (Table, error) {
	t := Table{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrBadTable, lineNo, len(fields))
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadTable, lineNo, err)
		}
		t[fields[0]] = n
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadYAML parses a mapping of word to count.
func ReadYAML(r io.Reader) (Table, error) {
	t := Table{}
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return t, nil // empty document
		}
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	return t, nil
}

// LoadTable reads a TSV (.tsv, .txt) or YAML (.yaml, .yml) table from fs.
func LoadTable(fs afero.Fs, path string) (Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext(path) {
	case ".tsv", ".txt":
		return ReadTSV(f)
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return nil, fmt.Errorf("%w: unsupported table format %q", ErrBadTable, ext(path))
	}
}
