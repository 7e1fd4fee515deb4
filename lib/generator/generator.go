// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// Package generator ties the pipeline together: collect asset paths,
// fingerprint contents, build the namespace tree, emit Go source, and
// write it atomically.
//
// A run is synchronous and run-to-completion with no persistent state:
// every invocation recomputes everything from the filesystem, so a run
// is idempotent given an unchanged tree. All validation and rendering
// happen before any write — on error the previous output file is left
// byte-for-byte intact.
package generator

import (
	"fmt"
	"go/token"
	"runtime"

	"github.com/numbyfinance/cacheb/lib/asset"
	"github.com/numbyfinance/cacheb/lib/codegen"
	"github.com/numbyfinance/cacheb/lib/mimetype"
	"github.com/numbyfinance/cacheb/lib/nstree"
)

// Config describes one generation run.
type Config struct {
	// OutputPath is where the generated Go file is written. Its
	// parent directory must exist. Required.
	OutputPath string

	// PackageName names the generated package.
	PackageName string

	// URLPrefix is prepended to every public asset path.
	URLPrefix string

	// AssetDirs are the root directories walked recursively.
	AssetDirs []string

	// ExtraFiles are individual files collected from outside any
	// root and bound at the namespace root under their basename.
	ExtraFiles []string

	// Include and Exclude filter root-discovered files by doublestar
	// pattern against their logical path.
	Include []string
	Exclude []string

	// MIMETypes extends or overrides the builtin extension table.
	MIMETypes map[string]string

	// Workers bounds concurrent fingerprinting. Zero or negative
	// means one worker per CPU. Scheduling never affects output:
	// results are aggregated back into collection order.
	Workers int
}

// Default returns the configuration defaults: package "assets", URL
// prefix "/static/", one fingerprint worker per CPU.
func Default() Config {
	return Config{
		PackageName: "assets",
		URLPrefix:   "/static/",
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// Summary reports what a successful run produced.
type Summary struct {
	// AssetCount is the number of generated bindings.
	AssetCount int

	// Bytes is the size of the written output file.
	Bytes int

	// OutputPath is where the output was written.
	OutputPath string
}

// Generate runs the full pipeline for cfg. On any error — unreadable
// input, identifier collision, emission invariant — nothing is
// written and the error is returned for the caller to surface as a
// build failure; no cause is retried, since all of them are
// deterministic given the filesystem state.
func Generate(cfg Config) (*Summary, error) {
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	assets, err := asset.Collect(cfg.AssetDirs, cfg.ExtraFiles, asset.CollectOptions{
		Include: cfg.Include,
		Exclude: cfg.Exclude,
	})
	if err != nil {
		return nil, err
	}

	if err := fingerprintAll(assets, cfg.Workers); err != nil {
		return nil, err
	}

	tree, err := nstree.Build(assets)
	if err != nil {
		return nil, err
	}

	source, err := codegen.Emit(tree, codegen.Options{
		PackageName: cfg.PackageName,
		URLPrefix:   cfg.URLPrefix,
		MIME:        mimetype.NewTable(cfg.MIMETypes),
	})
	if err != nil {
		return nil, err
	}

	if err := codegen.WriteFileAtomic(cfg.OutputPath, source); err != nil {
		return nil, err
	}

	return &Summary{
		AssetCount: len(assets),
		Bytes:      len(source),
		OutputPath: cfg.OutputPath,
	}, nil
}

// Codegen is the plain entry point for build scripts: generate
// outputPath from the given asset roots and extra files with default
// settings.
func Codegen(outputPath string, assetDirs, extraFiles []string) error {
	cfg := Default()
	cfg.OutputPath = outputPath
	cfg.AssetDirs = assetDirs
	cfg.ExtraFiles = extraFiles
	_, err := Generate(cfg)
	return err
}

func validate(cfg *Config) error {
	if cfg.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if len(cfg.AssetDirs) == 0 && len(cfg.ExtraFiles) == 0 {
		return fmt.Errorf("at least one asset root or extra file is required")
	}
	if cfg.PackageName == "" {
		cfg.PackageName = "assets"
	}
	if !token.IsIdentifier(cfg.PackageName) {
		return fmt.Errorf("package name %q is not a legal Go identifier", cfg.PackageName)
	}
	if cfg.URLPrefix == "" {
		cfg.URLPrefix = "/static/"
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return nil
}
