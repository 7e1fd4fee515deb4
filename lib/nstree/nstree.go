// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// Package nstree assembles collected assets into the namespace tree
// that mirrors the asset directory hierarchy: directories become
// branches (nested scopes in the generated code), files become leaves.
//
// The tree is an explicit structure with a child-identifier map per
// node, so detecting identifier collisions is a map-insertion check at
// each level. A collision is a hard build failure: two distinct sibling
// names that sanitize to the same identifier would make two different
// assets indistinguishable by name, which defeats compile-checked asset
// references. The generator never renames or suffixes its way around
// one.
package nstree

import (
	"fmt"
	"strings"

	"github.com/numbyfinance/cacheb/lib/asset"
	"github.com/numbyfinance/cacheb/lib/ident"
)

// Node is a namespace tree node. A node with a nil Asset is a branch
// (a directory scope); a node with a non-nil Asset is a leaf (one
// generated binding). The root is a branch with empty Name and Ident.
type Node struct {
	// Name is the raw filesystem name this node was derived from.
	Name string

	// Ident is the sanitized Go identifier for the node.
	Ident string

	// Asset is the bound file for leaves, nil for branches.
	Asset *asset.Asset

	// Children are the node's entries in insertion order, which is
	// the collector's deterministic order. Branches only.
	Children []*Node

	// origin is the source path of the first asset that caused this
	// branch to exist, kept for collision error messages.
	origin string

	byIdent map[string]*Node
}

// IsLeaf reports whether the node binds an asset.
func (n *Node) IsLeaf() bool { return n.Asset != nil }

// reservedRoot are identifiers the emitted package itself declares. An
// asset whose identifier lands on one at the root level is a collision
// with the generated API, reported the same way as an asset/asset
// collision.
var reservedRoot = map[string]bool{
	"File":   true,
	"Files":  true,
	"Lookup": true,
}

// CollisionError reports two sibling namespace entries whose names
// sanitize to the same identifier. Both source paths are named so the
// conflict is actionable from the build log alone.
type CollisionError struct {
	// Ident is the contested identifier.
	Ident string

	// Scope is the slash-joined logical directory the collision
	// occurred in, "" for the namespace root.
	Scope string

	// First and Second are the conflicting source paths. First may
	// read "generated API" when an asset collides with a name the
	// emitted package declares itself.
	First, Second string
}

func (e *CollisionError) Error() string {
	scope := "the namespace root"
	if e.Scope != "" {
		scope = fmt.Sprintf("scope %q", e.Scope)
	}
	return fmt.Sprintf("identifier %q in %s: %s and %s collide",
		e.Ident, scope, e.First, e.Second)
}

// Build assembles the namespace tree from the collected, fingerprinted
// asset set. Assets must already be in their final deterministic order;
// the tree preserves it. Returns a CollisionError if two sibling
// entries contest one identifier.
func Build(assets []*asset.Asset) (*Node, error) {
	root := &Node{byIdent: make(map[string]*Node)}

	for _, a := range assets {
		if err := insert(root, a); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func insert(root *Node, a *asset.Asset) error {
	current := root
	for depth, segment := range a.Logical[:len(a.Logical)-1] {
		identifier := ident.Sanitize(segment)
		scope := strings.Join(a.Logical[:depth], "/")

		child, exists := current.byIdent[identifier]
		switch {
		case !exists:
			child = &Node{
				Name:    segment,
				Ident:   identifier,
				origin:  a.Source,
				byIdent: make(map[string]*Node),
			}
			current.byIdent[identifier] = child
			current.Children = append(current.Children, child)
		case child.IsLeaf():
			// A file already owns the identifier this directory needs.
			return &CollisionError{
				Ident: identifier, Scope: scope,
				First: child.Asset.Source, Second: a.Source,
			}
		case child.Name != segment:
			// Two distinct directory names folding together.
			return &CollisionError{
				Ident: identifier, Scope: scope,
				First: child.origin, Second: a.Source,
			}
		}
		current = child
	}

	base := a.Base()
	identifier := ident.Sanitize(base)
	scope := a.Dir()

	if current == root && reservedRoot[identifier] {
		return &CollisionError{
			Ident: identifier, Scope: scope,
			First: "generated API", Second: a.Source,
		}
	}
	if existing, exists := current.byIdent[identifier]; exists {
		first := existing.origin
		if existing.IsLeaf() {
			first = existing.Asset.Source
		}
		return &CollisionError{
			Ident: identifier, Scope: scope,
			First: first, Second: a.Source,
		}
	}

	leaf := &Node{Name: base, Ident: identifier, Asset: a}
	current.byIdent[identifier] = leaf
	current.Children = append(current.Children, leaf)
	return nil
}
