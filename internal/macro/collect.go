// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package macro finds LaTeX macros used in a set of source files but not
// declared in the exclusion files (the symbol index, the macro file and
// the configuration files).
package macro

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/petar-djukic/texindex/internal/logger"
	"github.com/petar-djukic/texindex/internal/pattern"
	"github.com/petar-djukic/texindex/internal/source"
	"github.com/petar-djukic/texindex/pkg/types"
)

// DefaultExclusions lists the files whose macros count as declared.
var DefaultExclusions = []string{
	"symbols.tex",
	"macros.tex",
	"opt-letter.tex",
	"opt-ustrade.tex",
	"opt-color.tex",
	"hott-ustrade.tex",
	"hott-online.tex",
}

// Options configures a Collector.
type Options struct {
	Exclude      []string      // File names whose macros are excluded; matched exactly as given
	Strip        bool          // Remove environments, references, hints and punctuation first
	SurfaceWords bool          // Also record surface word forms
	Logger       logger.Logger // Optional; defaults to a no-op logger
}

// FormSet holds the literal spellings seen for one word.
type FormSet map[string]struct{}

// Sorted returns the spellings in ascending order.
func (f FormSet) Sorted() []string {
	forms := make([]string, 0, len(f))
	for s := range f {
		forms = append(forms, s)
	}
	sort.Strings(forms)
	return forms
}

// Result holds everything gathered from one run.
type Result struct {
	Included types.MacroSet     // Macros seen in ordinary files
	Excluded types.MacroSet     // Macros seen in exclusion files
	Words    map[string]FormSet // Lowercased word to surface forms
}

// Undefined returns the included macros that never appear in an exclusion
// file, in ascending lexical order.
func (r *Result) Undefined() []string {
	return r.Included.Minus(r.Excluded).Sorted()
}

// WordKeys returns the surface word keys in ascending order.
func (r *Result) WordKeys() []string {
	keys := make([]string, 0, len(r.Words))
	for k := range r.Words {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Collector accumulates macros file by file.
type Collector struct {
	opts    Options
	exclude map[string]bool
	result  *Result
}

// NewCollector returns an empty Collector.
func NewCollector(opts Options) *Collector {
	if opts.Logger == nil {
		opts.Logger = logger.NewNoopLogger()
	}
	exclude := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = true
	}
	return &Collector{
		opts:    opts,
		exclude: exclude,
		result: &Result{
			Included: types.MacroSet{},
			Excluded: types.MacroSet{},
			Words:    make(map[string]FormSet),
		},
	}
}

// Kind reports which side of the split the named file feeds.
func (c *Collector) Kind(name string) types.MacroKind {
	if c.exclude[name] {
		return types.Excluded
	}
	return types.Included
}

// Add scans the text of the named file.
func (c *Collector) Add(name, text string) error {
	if c.opts.Strip {
		var err error
		if text, err = pattern.Strip(text); err != nil {
			return fmt.Errorf("stripping %s: %w", name, err)
		}
	}

	names, err := pattern.Macros(text)
	if err != nil {
		return fmt.Errorf("scanning macros in %s: %w", name, err)
	}
	kind := c.Kind(name)
	if kind == types.Excluded {
		c.result.Excluded.Add(names...)
	} else {
		c.result.Included.Add(names...)
	}
	c.opts.Logger.Logf("%s: %d macro uses (%s)", name, len(names), kind)

	if !c.opts.SurfaceWords {
		return nil
	}
	words, err := pattern.SurfaceWords(text)
	if err != nil {
		return fmt.Errorf("scanning words in %s: %w", name, err)
	}
	for _, w := range words {
		key := strings.ToLower(w.Word)
		forms, ok := c.result.Words[key]
		if !ok {
			forms = FormSet{}
			c.result.Words[key] = forms
		}
		forms[w.Form] = struct{}{}
	}
	return nil
}

// Result returns the accumulated result. The Collector keeps adding to the
// same value if Add is called again.
func (c *Collector) Result() *Result {
	return c.result
}

// Collect reads each file from r in order and returns the combined result.
// The first read or scan failure aborts the run.
func Collect(ctx context.Context, r source.Reader, files []string, opts Options) (*Result, error) {
	c := NewCollector(opts)
	for _, name := range files {
		text, err := r.ReadFile(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := c.Add(name, text); err != nil {
			return nil, err
		}
	}
	return c.Result(), nil
}
