// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// texExt is the extension Expand looks for inside directories.
const texExt = ".tex"

// skipDirs contains directory names that Expand never descends into.
var skipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"vendor":       true,
	"node_modules": true,
}

// Expand replaces each directory in args with the .tex files below it.
// Other arguments pass through unchanged, including names that do not
// exist, so that reading them reports the error. Files inside a directory
// come out in lexical order; the order of args is kept.
//
// Files matched by a .gitignore at the top of an expanded directory are
// left out.
func Expand(ctx context.Context, r Reader, args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		isDir, err := r.IsDir(ctx, arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !isDir {
			out = append(out, arg)
			continue
		}

		names, err := r.List(ctx, arg)
		if err != nil {
			return nil, err
		}
		ignorer, err := loadGitignore(ctx, r, arg)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if !strings.HasSuffix(name, texExt) {
				continue
			}
			rel, relErr := filepath.Rel(arg, name)
			if relErr != nil {
				rel = name
			}
			if inSkippedDir(rel) || ignorer.isIgnored(rel) {
				continue
			}
			out = append(out, name)
		}
	}
	return out, nil
}

// inSkippedDir reports whether any directory component of rel is skipped.
func inSkippedDir(rel string) bool {
	parts := strings.Split(rel, string(filepath.Separator))
	for _, part := range parts[:len(parts)-1] {
		if skipDirs[part] {
			return true
		}
	}
	return false
}

// gitignorer applies the rules of one .gitignore file to paths relative to
// the directory holding it.
type gitignorer struct {
	matcher gitignore.Matcher
}

// newGitignorer parses .gitignore lines. Blank lines and comments are
// skipped.
func newGitignorer(lines []string) gitignorer {
	var patterns []gitignore.Pattern
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if len(patterns) == 0 {
		return gitignorer{}
	}
	return gitignorer{matcher: gitignore.NewMatcher(patterns)}
}

// loadGitignore reads dir/.gitignore. A missing file yields an ignorer
// that matches nothing.
func loadGitignore(ctx context.Context, r Reader, dir string) (gitignorer, error) {
	data, err := r.ReadFile(ctx, filepath.Join(dir, ".gitignore"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return gitignorer{}, nil
		}
		return gitignorer{}, err
	}
	return newGitignorer(strings.Split(data, "\n")), nil
}

// isIgnored reports whether the file at relPath is ignored. The last
// matching pattern decides.
func (g gitignorer) isIgnored(relPath string) bool {
	if g.matcher == nil {
		return false
	}
	return g.matcher.Match(strings.Split(filepath.ToSlash(relPath), "/"), false)
}
