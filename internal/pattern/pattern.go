// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pattern holds the regular expressions that approximate LaTeX
// markup for the macro collector and the word extractor.
//
// Patterns are compiled with regexp2 for backtracking, lookaround and rune
// offsets. Word boundaries are lookarounds over wordClass rather than \b,
// since regexp2's \b treats combining marks and joiners as word characters
// and numbers such as "²" as non-word characters.
package pattern

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// wordClass is a word character: a letter, a number or an underscore.
const wordClass = `[\p{L}\p{N}_]`

// Word boundaries built from wordClass.
const (
	// wordEnd follows a word character and precedes a non-word one.
	wordEnd = `(?!` + wordClass + `)`
	// boundary sits between a word and a non-word character in either
	// order, or between a word character and either end of the text.
	boundary = `(?:(?<=` + wordClass + `)(?!` + wordClass + `)|(?<!` + wordClass + `)(?=` + wordClass + `))`
)

// Pattern sources. Each one is compiled once into the matching variable
// below and tested on its own.
const (
	EnvironmentPattern = `\\(begin|end)\{[^}]+\}`
	ReferencePattern   = `\\(label|cref|autoref|eqref|ref)\{[^}]+\}`
	HyphenationPattern = `\\-`
	EmDashPattern      = `---`
	PunctuationPattern = `[,.;:?!]`
	MacroPattern       = `\\[a-zA-Z]+` + wordEnd
	SurfaceWordPattern = `(` + boundary + `(\$[^$]*\$-)?([a-zA-Z][a-zA-Z-]*)` + boundary + `)`
	ExcerptPattern     = `.{20}[^\\]` + boundary + `(\$[^$]*\$-)?([a-zA-Z]([a-zA-Z-]|\\-)*)` + boundary + `.{20}`
)

// ExcerptWidth is the number of characters of context captured on each
// side of a word by ExcerptPattern.
const ExcerptWidth = 20

var (
	Environment = regexp2.MustCompile(EnvironmentPattern, regexp2.None)
	Reference   = regexp2.MustCompile(ReferencePattern, regexp2.None)
	Hyphenation = regexp2.MustCompile(HyphenationPattern, regexp2.None)
	EmDash      = regexp2.MustCompile(EmDashPattern, regexp2.None)
	Punctuation = regexp2.MustCompile(PunctuationPattern, regexp2.None)
	Macro       = regexp2.MustCompile(MacroPattern, regexp2.None)
	SurfaceWord = regexp2.MustCompile(SurfaceWordPattern, regexp2.None)
	Excerpt     = regexp2.MustCompile(ExcerptPattern, regexp2.None)
)

// substitution is one step of the strip pipeline.
type substitution struct {
	re   *regexp2.Regexp
	with string
}

// stripSteps run in order; later steps see the output of earlier ones.
var stripSteps = []substitution{
	{Environment, " "},
	{Reference, " "},
	{Hyphenation, ""},
	{EmDash, " "},
	{Punctuation, " "},
}

// Strip removes environment delimiters, label and reference commands,
// hyphenation hints, em-dashes and sentence punctuation from text.
func Strip(text string) (string, error) {
	var err error
	for _, s := range stripSteps {
		text, err = s.re.Replace(text, s.with, -1, -1)
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// Macros returns every macro name in text, in scan order, duplicates
// included.
func Macros(text string) ([]string, error) {
	var names []string
	err := each(Macro, text, func(m *regexp2.Match) {
		names = append(names, m.String())
	})
	return names, err
}

// SurfaceMatch is one match of SurfaceWordPattern.
type SurfaceMatch struct {
	Form string // Full match, including any $...$- prefix
	Word string // Alphabetic run without the prefix
}

// SurfaceWords returns every SurfaceWordPattern match in text.
func SurfaceWords(text string) ([]SurfaceMatch, error) {
	var words []SurfaceMatch
	err := each(SurfaceWord, text, func(m *regexp2.Match) {
		words = append(words, SurfaceMatch{
			Form: m.GroupByNumber(1).String(),
			Word: m.GroupByNumber(3).String(),
		})
	})
	return words, err
}

// ExcerptMatch is one match of ExcerptPattern.
type ExcerptMatch struct {
	Text   string // Full match including both context windows
	Word   string // Word group as written, hyphenation hints included
	Offset int    // Rune offset of Word within the scanned text
}

// Excerpts returns the non-overlapping ExcerptPattern matches in text.
// Scanning resumes after the end of each match, so context consumed by one
// match is not rescanned for the next.
func Excerpts(text string) ([]ExcerptMatch, error) {
	var out []ExcerptMatch
	err := each(Excerpt, text, func(m *regexp2.Match) {
		g := m.GroupByNumber(2)
		out = append(out, ExcerptMatch{
			Text:   m.String(),
			Word:   g.String(),
			Offset: g.Index,
		})
	})
	return out, err
}

// CleanKey turns a captured word into its grouping key.
func CleanKey(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), `\-`, "")
}

// Flatten replaces newlines in an excerpt with spaces.
func Flatten(excerpt string) string {
	return strings.ReplaceAll(excerpt, "\n", " ")
}

// each calls fn for every successive match of re in text.
func each(re *regexp2.Regexp, text string, fn func(*regexp2.Match)) error {
	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		fn(m)
		m, err = re.FindNextMatch(m)
	}
	return err
}
