// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package frequency

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/petar-djukic/texindex/internal/frequency/mocks"
)

func TestTable(t *testing.T) {
	tbl := Table{"type": 120}

	n, err := tbl.Frequency("type")
	require.NoError(t, err)
	assert.Equal(t, 120, n)

	n, err = tbl.Frequency("univalence")
	require.NoError(t, err)
	assert.Equal(t, 0, n, "unknown words score 0")

	var empty Table
	n, err = empty.Frequency("anything")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.NoError(t, empty.Close())
}

func TestReadTSV(t *testing.T) {
	t.Run("tabs and spaces", func(t *testing.T) {
		tbl, err := ReadTSV(strings.NewReader("# word count\ntype\t120\n\nspace   45\ntype 7\n"))
		require.NoError(t, err)
		assert.Equal(t, Table{"type": 7, "space": 45}, tbl)
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, err := ReadTSV(strings.NewReader("type 1 2\n"))
		assert.ErrorIs(t, err, ErrBadTable)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("non-numeric count", func(t *testing.T) {
		_, err := ReadTSV(strings.NewReader("ok 1\ntype many\n"))
		assert.ErrorIs(t, err, ErrBadTable)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestReadYAML(t *testing.T) {
	t.Run("mapping", func(t *testing.T) {
		tbl, err := ReadYAML(strings.NewReader("type: 120\nspace: 45\n"))
		require.NoError(t, err)
		assert.Equal(t, Table{"type": 120, "space": 45}, tbl)
	})

	t.Run("empty document", func(t *testing.T) {
		tbl, err := ReadYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, tbl)
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, err := ReadYAML(strings.NewReader("- a\n- b\n"))
		assert.ErrorIs(t, err, ErrBadTable)
	})
}

func TestLoadTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/freq.tsv", []byte("path 3\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/freq.YML", []byte("path: 4\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/freq.csv", []byte("path,5\n"), 0o644))

	tbl, err := LoadTable(fs, "/freq.tsv")
	require.NoError(t, err)
	assert.Equal(t, Table{"path": 3}, tbl)

	tbl, err = LoadTable(fs, "/freq.YML")
	require.NoError(t, err)
	assert.Equal(t, Table{"path": 4}, tbl)

	_, err = LoadTable(fs, "/freq.csv")
	assert.ErrorIs(t, err, ErrBadTable)

	_, err = LoadTable(fs, "/missing.tsv")
	assert.Error(t, err)
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "freq.db")

	s, err := OpenStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "type", 10))
	require.NoError(t, s.Put(ctx, "type", 12))

	n, err := s.Frequency("type")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = s.Frequency("missing")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	imported, err := s.Import(ctx, Table{"space": 4, "path": 9})
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	count, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.NoError(t, s.Close())

	// Data survives reopening.
	s, err = OpenStore(path)
	require.NoError(t, err)
	defer s.Close()
	n, err = s.Frequency("path")
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/freq.tsv", []byte("type 2\n"), 0o644))

	t.Run("empty path", func(t *testing.T) {
		_, err := Open(fs, "")
		assert.ErrorIs(t, err, ErrNoSource)
	})

	t.Run("table file", func(t *testing.T) {
		src, err := Open(fs, "/freq.tsv")
		require.NoError(t, err)
		defer src.Close()
		n, err := src.Frequency("type")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("sqlite file", func(t *testing.T) {
		src, err := Open(fs, filepath.Join(t.TempDir(), "freq.sqlite"))
		require.NoError(t, err)
		defer src.Close()
		_, ok := src.(*Store)
		assert.True(t, ok)
	})
}

func TestMemo(t *testing.T) {
	ctrl := gomock.NewController(t)

	lookup := mocks.NewMockLookup(ctrl)
	lookup.EXPECT().Frequency("type").Return(5, nil).Times(1)
	lookup.EXPECT().Frequency("bad").Return(0, errors.New("boom")).Times(2)

	m := NewMemo(lookup)
	for i := 0; i < 3; i++ {
		n, err := m.Frequency("type")
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	}

	_, err := m.Frequency("bad")
	assert.Error(t, err)
	_, err = m.Frequency("bad")
	assert.Error(t, err, "errors are not cached")
}
