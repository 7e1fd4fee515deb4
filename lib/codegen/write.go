// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic replaces the file at path with data. The bytes are
// written to a temporary file in the same directory and renamed into
// place, so a failed or interrupted run never leaves a truncated or
// half-written file for a subsequent build step to consume — the prior
// content stays intact until the rename. The parent directory must
// already exist.
func WriteFileAtomic(path string, data []byte) error {
	directory := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(directory, ".cacheb-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary output in %s: %w", directory, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing generated output: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary output: %w", err)
	}

	// CreateTemp opens 0600; the output is ordinary source code.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming output to %s: %w", path, err)
	}

	success = true
	return nil
}
