// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/numbyfinance/cacheb/cmd/cacheb/cli"
)

// TestCommandTreeShape walks the full command tree and validates the
// invariants help output depends on: every subcommand has a name and a
// one-line summary, every node is either runnable or a pure dispatch
// node, and sibling names are unique.
func TestCommandTreeShape(t *testing.T) {
	root := rootCommand()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if command.Name == "" {
			t.Errorf("%s: command without a name", name)
		}
		if command != root && command.Summary == "" {
			t.Errorf("%s: command without a summary", name)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: command has neither Run nor subcommands", name)
		}

		seen := make(map[string]bool)
		for _, sub := range command.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", name, sub.Name)
			}
			seen[sub.Name] = true
		}
	})
}

func TestRootListsExpectedCommands(t *testing.T) {
	root := rootCommand()
	want := []string{"generate", "hash", "version"}

	var got []string
	for _, sub := range root.Subcommands {
		got = append(got, sub.Name)
	}
	for _, name := range want {
		found := false
		for _, have := range got {
			if have == name {
				found = true
			}
		}
		if !found {
			t.Errorf("root command tree missing %q (have %v)", name, got)
		}
	}
}

// walkCommands recursively visits every command in the tree,
// calling visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
