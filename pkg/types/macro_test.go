// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacroSet(t *testing.T) {
	s := MacroSet{}
	s.Add(`\foo`, `\bar`, `\foo`)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(`\bar`))
	assert.False(t, s.Has(`\baz`))
	assert.Equal(t, []string{`\bar`, `\foo`}, s.Sorted())
}

func TestMacroSet_Minus(t *testing.T) {
	a := MacroSet{}
	a.Add(`\a`, `\b`, `\c`)
	b := MacroSet{}
	b.Add(`\b`, `\z`)

	diff := a.Minus(b)
	assert.Equal(t, []string{`\a`, `\c`}, diff.Sorted())
	assert.Len(t, a, 3, "receiver is not modified")
}

func TestMacroSet_SortedEmpty(t *testing.T) {
	assert.Empty(t, MacroSet{}.Sorted())
}

func TestMacroKind_String(t *testing.T) {
	assert.Equal(t, "included", Included.String())
	assert.Equal(t, "excluded", Excluded.String())
	assert.Equal(t, "unknown", MacroKind(9).String())
}
