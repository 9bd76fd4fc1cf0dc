// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package word

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
)

// ErrInvalidFilter is returned when a filter expression does not compile.
var ErrInvalidFilter = errors.New("invalid filter expression")

// matchAll is used when no expressions are given.
const matchAll = ".*"

// Filter selects words by case-insensitive regular expressions. A word
// passes when any expression matches anywhere in it.
type Filter struct {
	exprs []*regexp2.Regexp
}

// NewFilter compiles exprs. With no expressions every word passes.
func NewFilter(exprs []string) (*Filter, error) {
	if len(exprs) == 0 {
		exprs = []string{matchAll}
	}
	f := &Filter{}
	for _, e := range exprs {
		re, err := regexp2.Compile(e, regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidFilter, e, err)
		}
		f.exprs = append(f.exprs, re)
	}
	return f, nil
}

// Match reports whether word passes the filter.
func (f *Filter) Match(word string) (bool, error) {
	for _, re := range f.exprs {
		ok, err := re.MatchString(word)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
