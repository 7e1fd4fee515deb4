// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// The cacheb binary generates Go source bindings for static assets:
// it walks the configured asset directories, fingerprints every file's
// content, and emits a package of typed accessors plus a lookup
// registry mapping fingerprinted public paths back to their sources.
package main

import (
	"fmt"

	"github.com/numbyfinance/cacheb/cmd/cacheb/cli"
	"github.com/numbyfinance/cacheb/lib/version"
)

// rootCommand builds the complete cacheb command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "cacheb",
		Description: `cacheb: static asset code generator.

Walk asset directories, fingerprint every file's content, and generate
a Go package of typed asset bindings with cache-busted public paths.`,
		Subcommands: []*cli.Command{
			generateCommand(),
			hashCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("cacheb %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Generate bindings for ./assets into the assets package",
				Command:     "cacheb generate --root assets --out assets/assets.go",
			},
			{
				Description: "Generate from a manifest file",
				Command:     "cacheb generate --manifest cacheb.yaml",
			},
			{
				Description: "Print the fingerprint and hashed name of one file",
				Command:     "cacheb hash assets/css/main.css",
			},
		},
	}
}
