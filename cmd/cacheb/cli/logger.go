// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger builds the logger for CLI commands. On a terminal it uses
// slog's text handler for human-readable output; when stderr is piped
// or redirected (CI, build systems) it switches to JSON so the output
// stays machine-parseable. Commands scope it with command-specific
// context:
//
//	logger := cli.NewLogger(quiet).With("command", "generate")
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
