// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/numbyfinance/cacheb/cmd/cacheb/cli"
	"github.com/numbyfinance/cacheb/lib/config"
	"github.com/numbyfinance/cacheb/lib/generator"
)

func generateCommand() *cli.Command {
	var (
		manifestPath string
		outputPath   string
		packageName  string
		urlPrefix    string
		roots        []string
		extras       []string
		include      []string
		exclude      []string
		workers      int
		quiet        bool
	)

	// A single flag set instance, so Run can ask which flags the user
	// actually passed when layering them over a manifest.
	flagSet := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	flagSet.StringVar(&manifestPath, "manifest", "", "manifest file (YAML or JSONC)")
	flagSet.StringVar(&outputPath, "out", "", "output path for the generated Go file")
	flagSet.StringVar(&packageName, "package", "", `generated package name (default "assets")`)
	flagSet.StringVar(&urlPrefix, "url-prefix", "", `public URL prefix (default "/static/")`)
	flagSet.StringArrayVar(&roots, "root", nil, "asset directory to walk (repeatable)")
	flagSet.StringArrayVar(&extras, "extra", nil, "extra file collected from outside the roots (repeatable)")
	flagSet.StringArrayVar(&include, "include", nil, "glob a logical path must match to be collected (repeatable)")
	flagSet.StringArrayVar(&exclude, "exclude", nil, "glob that excludes matching logical paths (repeatable)")
	flagSet.IntVar(&workers, "workers", 0, "concurrent fingerprint workers (default one per CPU)")
	flagSet.BoolVar(&quiet, "quiet", false, "only log warnings and errors")

	return &cli.Command{
		Name:    "generate",
		Summary: "Generate the asset bindings package",
		Description: `Walk the asset roots, fingerprint every file, and write the generated
Go package to the output path.

Configuration comes from a manifest file (--manifest, YAML or JSONC),
from flags, or both: flags passed explicitly override the manifest's
values. Either way an output path and at least one asset root or extra
file are required.

The output is written atomically: on any error (unreadable input, an
identifier collision, a malformed pattern) the previous output file is
left untouched and the command exits non-zero.`,
		Usage: "cacheb generate [flags]",
		Examples: []cli.Example{
			{
				Description: "Generate bindings for ./assets",
				Command:     "cacheb generate --root assets --out assets/assets.go",
			},
			{
				Description: "Generate from a manifest, overriding the worker count",
				Command:     "cacheb generate --manifest cacheb.yaml --workers 1",
			},
			{
				Description: "Include a file living outside the asset roots",
				Command:     "cacheb generate --root assets --extra vendor/htmx.min.js --out assets/assets.go",
			},
		},
		Flags: func() *pflag.FlagSet { return flagSet },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("generate takes no positional arguments, got %q", args[0])
			}

			cfg := generator.Default()
			if manifestPath != "" {
				loaded, err := config.Load(manifestPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			if flagSet.Changed("out") {
				cfg.OutputPath = outputPath
			}
			if flagSet.Changed("package") {
				cfg.PackageName = packageName
			}
			if flagSet.Changed("url-prefix") {
				cfg.URLPrefix = urlPrefix
			}
			if flagSet.Changed("root") {
				cfg.AssetDirs = roots
			}
			if flagSet.Changed("extra") {
				cfg.ExtraFiles = extras
			}
			if flagSet.Changed("include") {
				cfg.Include = include
			}
			if flagSet.Changed("exclude") {
				cfg.Exclude = exclude
			}
			if flagSet.Changed("workers") {
				cfg.Workers = workers
			}

			logger := cli.NewLogger(quiet).With("command", "generate")

			summary, err := generator.Generate(cfg)
			if err != nil {
				return err
			}
			logger.Info("generated asset bindings",
				"assets", summary.AssetCount,
				"bytes", summary.Bytes,
				"output", summary.OutputPath)
			return nil
		},
	}
}
