// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package asset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// CollectOptions filters discovery. Patterns are doublestar globs
// ("**/*.css") matched against the slash-joined logical path of each
// file. Filtering applies only to files found under asset roots;
// explicitly listed extra files are always collected.
type CollectOptions struct {
	// Include keeps only matching files. Empty means keep everything.
	Include []string

	// Exclude drops matching files, after Include.
	Exclude []string
}

// Collect walks the given root directories and produces one Asset per
// regular file, plus one per explicitly listed extra file. Symlinked
// directories are not descended into and symlinked files under roots
// are skipped, so filesystem cycles cannot occur. Extra files may be
// symlinks (they are stat-resolved and cannot recurse).
//
// The result is deduplicated by absolute path and sorted
// lexicographically by logical path, so repeated runs over an unchanged
// filesystem yield the same order regardless of readdir order or root
// listing order — a prerequisite for diff-stable output.
//
// A missing or unreadable root or extra file aborts collection.
func Collect(roots, extras []string, opts CollectOptions) ([]*Asset, error) {
	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("malformed glob pattern %q", pattern)
		}
	}

	var assets []*Asset
	seen := make(map[string]bool)

	for _, root := range roots {
		collected, err := collectRoot(root, opts)
		if err != nil {
			return nil, err
		}
		for _, a := range collected {
			if !seen[a.AbsPath] {
				seen[a.AbsPath] = true
				assets = append(assets, a)
			}
		}
	}

	for _, extra := range extras {
		a, err := collectExtra(extra)
		if err != nil {
			return nil, err
		}
		if !seen[a.AbsPath] {
			seen[a.AbsPath] = true
			assets = append(assets, a)
		}
	}

	sort.Slice(assets, func(i, j int) bool {
		a, b := strings.Join(assets[i].Logical, "/"), strings.Join(assets[j].Logical, "/")
		if a != b {
			return a < b
		}
		return assets[i].Source < assets[j].Source
	})

	return assets, nil
}

func collectRoot(root string, opts CollectOptions) ([]*Asset, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("asset root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset root %s is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving asset root %s: %w", root, err)
	}

	var assets []*Asset
	walkErr := filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}
		// Regular files only: directories are implied by their
		// contents, and symlinks are skipped rather than resolved.
		if !entry.Type().IsRegular() {
			return nil
		}

		relative, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("relativizing %s under %s: %w", path, absRoot, err)
		}
		logical := filepath.ToSlash(relative)

		if !matched(logical, opts) {
			return nil
		}

		assets = append(assets, &Asset{
			AbsPath: path,
			Source:  filepath.ToSlash(filepath.Join(root, relative)),
			Logical: strings.Split(logical, "/"),
		})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return assets, nil
}

func collectExtra(extra string) (*Asset, error) {
	info, err := os.Stat(extra)
	if err != nil {
		return nil, fmt.Errorf("extra file %s: %w", extra, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("extra file %s is not a regular file", extra)
	}

	abs, err := filepath.Abs(extra)
	if err != nil {
		return nil, fmt.Errorf("resolving extra file %s: %w", extra, err)
	}

	return &Asset{
		AbsPath: abs,
		Source:  filepath.ToSlash(extra),
		Logical: []string{filepath.Base(extra)},
	}, nil
}

// matched applies the include/exclude patterns to a logical path.
// Patterns were validated up front in Collect, so Match cannot fail
// here; MatchUnvalidated skips the redundant re-validation.
func matched(logical string, opts CollectOptions) bool {
	if len(opts.Include) > 0 {
		included := false
		for _, pattern := range opts.Include {
			if doublestar.MatchUnvalidated(pattern, logical) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}
	for _, pattern := range opts.Exclude {
		if doublestar.MatchUnvalidated(pattern, logical) {
			return false
		}
	}
	return true
}
