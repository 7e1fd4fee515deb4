// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads a generation manifest from a single explicit
// file. There is no discovery, no home-directory fallback, and no
// environment override of individual keys: the manifest named on the
// command line is the whole configuration, which keeps builds
// deterministic and auditable.
//
// Two formats are supported, keyed on the file extension: YAML
// (.yaml, .yml) and JSONC (.json, .jsonc — JSON with comments and
// trailing commas, for manifests that want inline documentation).
// Unknown keys are errors in both formats, so a typo in a manifest is
// a build failure rather than a silently ignored setting.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/numbyfinance/cacheb/lib/generator"
)

// manifest is the on-disk schema. Field names are snake_case in both
// formats.
type manifest struct {
	Output     string            `yaml:"output" json:"output"`
	Package    string            `yaml:"package" json:"package"`
	URLPrefix  string            `yaml:"url_prefix" json:"url_prefix"`
	AssetDirs  []string          `yaml:"asset_dirs" json:"asset_dirs"`
	ExtraFiles []string          `yaml:"extra_files" json:"extra_files"`
	Include    []string          `yaml:"include" json:"include"`
	Exclude    []string          `yaml:"exclude" json:"exclude"`
	MIMETypes  map[string]string `yaml:"mime_types" json:"mime_types"`
	Workers    int               `yaml:"workers" json:"workers"`
}

// Load reads the manifest at path and returns the corresponding
// generator configuration. Relative paths in the manifest (output,
// asset roots, extra files) are resolved against the manifest's own
// directory, so a build invoked from anywhere in the repository sees
// the same files.
func Load(path string) (generator.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return generator.Config{}, fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&m); err != nil {
			return generator.Config{}, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&m); err != nil {
			return generator.Config{}, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	default:
		return generator.Config{}, fmt.Errorf("manifest %s: unsupported format %q (want .yaml, .yml, .json, or .jsonc)", path, extension)
	}

	base := filepath.Dir(path)
	cfg := generator.Default()
	cfg.OutputPath = resolve(base, m.Output)
	if m.Package != "" {
		cfg.PackageName = m.Package
	}
	if m.URLPrefix != "" {
		cfg.URLPrefix = m.URLPrefix
	}
	cfg.AssetDirs = resolveAll(base, m.AssetDirs)
	cfg.ExtraFiles = resolveAll(base, m.ExtraFiles)
	cfg.Include = m.Include
	cfg.Exclude = m.Exclude
	cfg.MIMETypes = m.MIMETypes
	if m.Workers > 0 {
		cfg.Workers = m.Workers
	}
	return cfg, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func resolveAll(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, len(paths))
	for i, path := range paths {
		resolved[i] = resolve(base, path)
	}
	return resolved
}
