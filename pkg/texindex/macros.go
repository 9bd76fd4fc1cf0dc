// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package texindex

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/petar-djukic/texindex/internal/macro"
	"github.com/petar-djukic/texindex/internal/source"
)

// Macros scans paths (files, or directories expanded to their .tex files)
// and writes every undefined macro to w, one per line, in ascending order.
// It returns the undefined macros.
func (ix *Indexer) Macros(ctx context.Context, paths []string, opts MacroOptions, w io.Writer) ([]string, error) {
	files, err := source.Expand(ctx, ix.reader, paths)
	if err != nil {
		return nil, err
	}
	ix.log.Logf("scanning %d files for macros", len(files))

	exclude := ix.cfg.Exclude
	if exclude == nil {
		exclude = macro.DefaultExclusions
	}

	res, err := macro.Collect(ctx, ix.reader, files, macro.Options{
		Exclude:      exclude,
		Strip:        true,
		SurfaceWords: true,
		Logger:       ix.log,
	})
	if err != nil {
		return nil, err
	}

	undefined := res.Undefined()
	hints := make(map[string]string)
	if opts.Suggest {
		for _, s := range macro.Suggest(undefined, res.Excluded.Sorted(), macro.DefaultSuggestThreshold) {
			hints[s.Macro] = s.Closest
		}
	}

	bw := bufio.NewWriter(w)
	for _, m := range undefined {
		if closest, ok := hints[m]; ok {
			fmt.Fprintf(bw, "%s\t(did you mean %s?)\n", m, closest)
			continue
		}
		fmt.Fprintln(bw, m)
	}
	if opts.DumpWords {
		for _, key := range res.WordKeys() {
			fmt.Fprintf(bw, "%s: %s\n", key, strings.Join(res.Words[key].Sorted(), " "))
		}
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}
	return undefined, nil
}
