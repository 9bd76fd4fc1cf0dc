// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger provides diagnostic logging for texindex. Reports go to
// stdout; diagnostics go through a Logger so they never mix with them.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes formatted diagnostic lines.
type Logger interface {
	// Logf logs a formatted message. A trailing newline is added.
	Logf(format string, args ...any)
}

type noopLogger struct{}

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Logf(string, ...any) {}

// writerLogger serializes writes to w.
type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterLogger returns a Logger that writes each message as one line
// to w, prefixed with "texindex: ".
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

func (l *writerLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "texindex: "+format+"\n", args...)
}
