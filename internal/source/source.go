// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package source loads LaTeX source text, either from a directory tree or
// from a git revision.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when a named file does not exist in the source.
var ErrNotFound = errors.New("file not found")

// Reader gives read access to source files by name. Names are relative to
// the reader's root unless absolute.
type Reader interface {
	// ReadFile returns the full text of the named file.
	ReadFile(ctx context.Context, name string) (string, error)
	// IsDir reports whether name is a directory.
	IsDir(ctx context.Context, name string) (bool, error)
	// List returns every regular file below dir, recursively, as names
	// usable with ReadFile, in lexical order.
	List(ctx context.Context, dir string) ([]string, error)
}

// FSReader reads files from an afero filesystem.
type FSReader struct {
	Fs   afero.Fs
	Root string // Directory relative names are resolved against
}

// NewOSReader returns a reader for the operating system filesystem rooted
// at root.
func NewOSReader(root string) *FSReader {
	return &FSReader{Fs: afero.NewOsFs(), Root: root}
}

// ReadFile reads the whole file with line endings normalized to "\n". The
// file is closed before it returns.
func (r *FSReader) ReadFile(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := afero.ReadFile(r.Fs, r.resolve(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", err
	}
	return normalizeNewlines(string(data)), nil
}

// IsDir reports whether name is a directory. A missing path is not a
// directory and is not an error; reading it later reports the failure.
func (r *FSReader) IsDir(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := r.Fs.Stat(r.resolve(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// List walks dir and returns the names of all regular files below it.
func (r *FSReader) List(ctx context.Context, dir string) ([]string, error) {
	base := r.resolve(dir)
	var names []string
	err := afero.Walk(r.Fs, base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if info.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(base, path)
		if relErr != nil {
			return relErr
		}
		names = append(names, filepath.Join(dir, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(names)
	return names, nil
}

func (r *FSReader) resolve(name string) string {
	if filepath.IsAbs(name) || r.Root == "" {
		return name
	}
	return filepath.Join(r.Root, name)
}

// crlf maps Windows and old Mac line endings to "\n".
var crlf = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeNewlines rewrites "\r\n" and lone "\r" as "\n".
func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return crlf.Replace(text)
}
