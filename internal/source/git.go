// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNoGit is returned when the working directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// ErrBadRevision is returned when a revision cannot be resolved to a commit.
var ErrBadRevision = errors.New("unknown revision")

// GitReader reads files from the tree of one commit. Names are relative to
// the repository root.
type GitReader struct {
	rev  string
	tree *object.Tree
}

// OpenGit opens the repository at workDir and resolves rev (a branch, tag,
// hash or expression such as HEAD~2) to its tree.
func OpenGit(workDir, rev string) (*GitReader, error) {
	repo, err := gogit.PlainOpen(workDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadRevision, rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("getting commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("getting tree of %s: %w", hash, err)
	}

	return &GitReader{rev: rev, tree: tree}, nil
}

// ReadFile returns the content of name as committed at the revision, with
// line endings normalized to "\n".
func (g *GitReader) ReadFile(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, err := g.tree.File(treePath(name))
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", fmt.Errorf("%w: %s at %s", ErrNotFound, name, g.rev)
		}
		return "", err
	}
	text, err := f.Contents()
	if err != nil {
		return "", err
	}
	return normalizeNewlines(text), nil
}

// IsDir reports whether name is a directory in the revision's tree.
func (g *GitReader) IsDir(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p := treePath(name)
	if p == "." {
		return true, nil
	}
	e, err := g.tree.FindEntry(p)
	if err != nil {
		if errors.Is(err, object.ErrEntryNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
			return false, nil
		}
		return false, err
	}
	return e.Mode == filemode.Dir, nil
}

// List returns every file below dir in the revision's tree.
func (g *GitReader) List(ctx context.Context, dir string) ([]string, error) {
	prefix := treePath(dir)
	var names []string
	err := g.tree.Files().ForEach(func(f *object.File) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if prefix != "." && !strings.HasPrefix(f.Name, prefix+"/") {
			return nil
		}
		rel := f.Name
		if prefix != "." {
			rel = strings.TrimPrefix(f.Name, prefix+"/")
		}
		names = append(names, filepath.Join(dir, filepath.FromSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s at %s: %w", dir, g.rev, err)
	}
	sort.Strings(names)
	return names, nil
}

// treePath converts an OS path to the slash form go-git trees use.
func treePath(name string) string {
	return path.Clean(filepath.ToSlash(name))
}
