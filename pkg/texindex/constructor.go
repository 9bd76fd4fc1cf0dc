// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package texindex

import (
	"context"
	"fmt"
	"os"

	"github.com/petar-djukic/texindex/internal/logger"
	"github.com/petar-djukic/texindex/internal/source"
	"github.com/petar-djukic/texindex/internal/word"
)

const defaultWorkDir = "."

// Indexer runs the macro and word reports against one source tree.
type Indexer struct {
	cfg    Config
	reader source.Reader
	log    logger.Logger
}

// New validates the config and opens the source tree. When Rev is set the
// revision is resolved here, so a bad revision fails before any output.
func New(cfg Config) (*Indexer, error) {
	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	log := logger.NewNoopLogger()
	if cfg.Log != nil {
		log = logger.NewWriterLogger(cfg.Log)
	}

	var r source.Reader
	if cfg.Rev != "" {
		g, err := source.OpenGit(cfg.WorkDir, cfg.Rev)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		log.Logf("reading sources from %s at %s", cfg.WorkDir, cfg.Rev)
		r = g
	} else {
		r = source.NewOSReader(cfg.WorkDir)
	}

	return &Indexer{
		cfg:    cfg,
		reader: unreadable{r},
		log:    log,
	}, nil
}

// validateConfig checks fields that have no usable default.
func validateConfig(cfg Config) error {
	if info, err := os.Stat(cfg.WorkDir); err != nil || !info.IsDir() {
		return fmt.Errorf("WorkDir %q does not exist or is not a directory", cfg.WorkDir)
	}
	if cfg.Alphabetical && cfg.FrequencyPath != "" {
		return fmt.Errorf("Alphabetical and FrequencyPath %q are mutually exclusive", cfg.FrequencyPath)
	}
	if cfg.MaxOccurrences < 0 {
		return fmt.Errorf("MaxOccurrences must not be negative, got %d", cfg.MaxOccurrences)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.WorkDir == "" {
		cfg.WorkDir = defaultWorkDir
	}
	if cfg.MaxOccurrences == 0 {
		cfg.MaxOccurrences = word.DefaultMaxOccurrences
	}
}

// unreadable tags every read failure with ErrSourceUnreadable.
type unreadable struct {
	source.Reader
}

func (u unreadable) ReadFile(ctx context.Context, name string) (string, error) {
	text, err := u.Reader.ReadFile(ctx, name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	return text, nil
}
