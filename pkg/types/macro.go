// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "sort"

// MacroKind records which side of the exclusion split a file feeds.
type MacroKind int

const (
	Included MacroKind = iota // Macros from ordinary source files
	Excluded                  // Macros from exclusion files
)

func (k MacroKind) String() string {
	switch k {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// MacroSet is a set of macro names such as `\emph`.
type MacroSet map[string]struct{}

// Add inserts names into the set.
func (s MacroSet) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// Has reports whether name is in the set.
func (s MacroSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Minus returns the names in s that are not in other. Neither set is
// modified.
func (s MacroSet) Minus(other MacroSet) MacroSet {
	out := make(MacroSet, len(s))
	for n := range s {
		if !other.Has(n) {
			out[n] = struct{}{}
		}
	}
	return out
}

// Sorted returns the names in ascending lexical order.
func (s MacroSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
