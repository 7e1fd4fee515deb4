// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"path/filepath"

	"github.com/numbyfinance/cacheb/cmd/cacheb/cli"
	"github.com/numbyfinance/cacheb/lib/asset"
	"github.com/numbyfinance/cacheb/lib/fingerprint"
)

func hashCommand() *cli.Command {
	return &cli.Command{
		Name:    "hash",
		Summary: "Print the fingerprint and hashed name of one file",
		Description: `Fingerprint a single file and print the content token and the hashed
file name it would receive in generated output. Useful for checking
what public path an asset will get without running a full generation.`,
		Usage: "cacheb hash <file>",
		Examples: []cli.Example{
			{
				Description: "Fingerprint a stylesheet",
				Command:     "cacheb hash assets/css/main.css",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("hash takes exactly one file argument, got %d", len(args))
			}
			path := args[0]

			token, err := fingerprint.File(path)
			if err != nil {
				return err
			}
			file := asset.Asset{
				Logical:     []string{filepath.Base(path)},
				Fingerprint: token,
			}
			fmt.Printf("fingerprint: %s\n", token)
			fmt.Printf("hashed name: %s\n", file.HashedName())
			return nil
		},
	}
}
