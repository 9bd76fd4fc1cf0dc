// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memReader returns an in-memory reader rooted at /book holding files.
func memReader(t *testing.T, files map[string]string) *FSReader {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/book", name), []byte(content), 0o644))
	}
	return &FSReader{Fs: fs, Root: "/book"}
}

func TestFSReader_ReadFile(t *testing.T) {
	r := memReader(t, map[string]string{"basics.tex": `\section{Basics}`})

	t.Run("existing file", func(t *testing.T) {
		text, err := r.ReadFile(context.Background(), "basics.tex")
		require.NoError(t, err)
		assert.Equal(t, `\section{Basics}`, text)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := r.ReadFile(context.Background(), "logic.tex")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "logic.tex")
	})

	t.Run("absolute name ignores root", func(t *testing.T) {
		text, err := r.ReadFile(context.Background(), "/book/basics.tex")
		require.NoError(t, err)
		assert.Equal(t, `\section{Basics}`, text)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.ReadFile(ctx, "basics.tex")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFSReader_OS(t *testing.T) {
	dir := t.TempDir()
	r := NewOSReader(dir)
	require.NoError(t, afero.WriteFile(r.Fs, filepath.Join(dir, "a.tex"), []byte("alpha"), 0o644))

	text, err := r.ReadFile(context.Background(), "a.tex")
	require.NoError(t, err)
	assert.Equal(t, "alpha", text)

	isDir, err := r.IsDir(context.Background(), ".")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestFSReader_IsDir(t *testing.T) {
	r := memReader(t, map[string]string{"chapters/logic.tex": "x"})
	ctx := context.Background()

	isDir, err := r.IsDir(ctx, "chapters")
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = r.IsDir(ctx, "chapters/logic.tex")
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = r.IsDir(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, isDir)
}

func TestFSReader_List(t *testing.T) {
	r := memReader(t, map[string]string{
		"b.tex":          "",
		"a.tex":          "",
		"sub/c.tex":      "",
		"sub/notes.txt":  "",
		"other/skip.tex": "",
	})

	names, err := r.List(context.Background(), "sub")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("sub", "c.tex"), filepath.Join("sub", "notes.txt")}, names)

	names, err = r.List(context.Background(), ".")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a.tex",
		"b.tex",
		filepath.Join("other", "skip.tex"),
		filepath.Join("sub", "c.tex"),
		filepath.Join("sub", "notes.txt"),
	}, names)
}

func TestExpand(t *testing.T) {
	r := memReader(t, map[string]string{
		"macros.tex":              "",
		"chapters/logic.tex":      "",
		"chapters/basics.tex":     "",
		"chapters/figure.png":     "",
		"chapters/vendor/dep.tex": "",
		"chapters/.git/x.tex":     "",
		"chapters/draft/old.tex":  "",
		"chapters/.gitignore":     "# drafts\ndraft/\n",
	})
	ctx := context.Background()

	t.Run("files pass through in order", func(t *testing.T) {
		got, err := Expand(ctx, r, []string{"macros.tex", "missing.tex"})
		require.NoError(t, err)
		assert.Equal(t, []string{"macros.tex", "missing.tex"}, got)
	})

	t.Run("directory expands to tex files", func(t *testing.T) {
		got, err := Expand(ctx, r, []string{"macros.tex", "chapters"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"macros.tex",
			filepath.Join("chapters", "basics.tex"),
			filepath.Join("chapters", "logic.tex"),
		}, got)
	})

	t.Run("current directory keeps bare names", func(t *testing.T) {
		got, err := Expand(ctx, r, []string{"."})
		require.NoError(t, err)
		assert.Contains(t, got, "macros.tex")
		assert.NotContains(t, got, filepath.Join("chapters", "vendor", "dep.tex"))
		assert.NotContains(t, got, filepath.Join("chapters", ".git", "x.tex"))
	})
}

func TestGitignorer(t *testing.T) {
	tests := []struct {
		name    string
		rules   []string
		path    string
		ignored bool
	}{
		{name: "directory at any depth", rules: []string{"build/"}, path: "build/out.tex", ignored: true},
		{name: "nested directory", rules: []string{"build/"}, path: "part/build/out.tex", ignored: true},
		{name: "directory rule skips files", rules: []string{"build/"}, path: "part/build", ignored: false},
		{name: "glob on file name", rules: []string{"*.aux.tex"}, path: "sub/main.aux.tex", ignored: true},
		{name: "no match", rules: []string{"*.aux.tex"}, path: "main.tex", ignored: false},
		{name: "slash anchors to root", rules: []string{"chapters/draft"}, path: "chapters/draft/old.tex", ignored: true},
		{name: "anchored rule not matched below root", rules: []string{"chapters/draft"}, path: "book/chapters/draft/old.tex", ignored: false},
		{name: "leading slash anchors", rules: []string{"/main.tex"}, path: "main.tex", ignored: true},
		{name: "leading slash not matched in subdirectory", rules: []string{"/main.tex"}, path: "sub/main.tex", ignored: false},
		{name: "anchored glob", rules: []string{"old/*.tex"}, path: "old/a.tex", ignored: true},
		{name: "negation re-includes", rules: []string{"*.tex", "!keep.tex"}, path: "keep.tex", ignored: false},
		{name: "negation leaves others ignored", rules: []string{"*.tex", "!keep.tex"}, path: "drop.tex", ignored: true},
		{name: "last rule wins", rules: []string{"!keep.tex", "*.tex"}, path: "keep.tex", ignored: true},
		{name: "comments and blanks", rules: []string{"# drafts", "", "  "}, path: "drafts.tex", ignored: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGitignorer(tt.rules)
			assert.Equal(t, tt.ignored, g.isIgnored(filepath.FromSlash(tt.path)))
		})
	}
}

func TestExpand_AnchoredGitignore(t *testing.T) {
	r := memReader(t, map[string]string{
		".gitignore":               "/drafts/\n",
		"drafts/old.tex":           "",
		"chapters/drafts/keep.tex": "",
		"chapters/intro.tex":       "",
	})

	got, err := Expand(context.Background(), r, []string{"."})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("chapters", "drafts", "keep.tex"),
		filepath.Join("chapters", "intro.tex"),
	}, got)
}

func TestFSReader_ReadFileNormalizesLineEndings(t *testing.T) {
	r := memReader(t, map[string]string{
		"dos.tex": "one\r\ntwo\r\n",
		"mac.tex": "one\rtwo",
	})

	text, err := r.ReadFile(context.Background(), "dos.tex")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", text)

	text, err = r.ReadFile(context.Background(), "mac.tex")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", text)
}

// lockedFs refuses to open one path.
type lockedFs struct {
	afero.Fs
	locked string
}

func (l lockedFs) Open(name string) (afero.File, error) {
	if name == l.locked {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return l.Fs.Open(name)
}

func TestFSReader_ListUnreadableDirectory(t *testing.T) {
	mem := memReader(t, map[string]string{
		"a.tex":        "",
		"locked/b.tex": "",
	})
	r := &FSReader{Fs: lockedFs{Fs: mem.Fs, locked: "/book/locked"}, Root: "/book"}

	_, err := r.List(context.Background(), ".")
	assert.ErrorIs(t, err, fs.ErrPermission)

	_, err = Expand(context.Background(), r, []string{"."})
	assert.ErrorIs(t, err, fs.ErrPermission)
}
