// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// Package asset defines the asset model and the path collector that
// discovers files under the configured asset roots.
package asset

import (
	"path"
	"strings"
)

// Asset describes one discovered static file. Collect produces exactly
// one Asset per filesystem file; the logical path determines its
// position in the generated namespace. Assets are not modified after
// collection except for the Fingerprint field, which the fingerprint
// stage fills in.
type Asset struct {
	// AbsPath is the absolute filesystem path, used to read the
	// file's bytes.
	AbsPath string

	// Source is the original file reference as configured, with
	// forward slashes: the asset root as given joined with the
	// root-relative path. This — not AbsPath — is what the generated
	// registry records, so the output does not depend on where the
	// tree happens to be checked out.
	Source string

	// Logical is the root-relative path as segments. Extra files
	// (collected from outside any root) have a single segment, their
	// basename, which attaches them to the namespace root.
	Logical []string

	// Fingerprint is the content token, empty until the fingerprint
	// stage has run.
	Fingerprint string
}

// Base returns the file's name, the final logical segment.
func (a *Asset) Base() string {
	return a.Logical[len(a.Logical)-1]
}

// Dir returns the slash-joined logical directory, "" for assets at the
// namespace root.
func (a *Asset) Dir() string {
	return strings.Join(a.Logical[:len(a.Logical)-1], "/")
}

// Stem returns the file name without its extension. A name that is all
// extension (".env") is its own stem.
func (a *Asset) Stem() string {
	base := a.Base()
	if stem := strings.TrimSuffix(base, path.Ext(base)); stem != "" {
		return stem
	}
	return base
}

// Ext returns the file's extension without the leading dot, "" if the
// name has none.
func (a *Asset) Ext() string {
	base := a.Base()
	if strings.TrimSuffix(base, path.Ext(base)) == "" {
		return ""
	}
	return strings.TrimPrefix(path.Ext(base), ".")
}

// HashedName returns the cache-busted public file name. Requires the
// fingerprint stage to have run.
func (a *Asset) HashedName() HashedName {
	return HashedName{Stem: a.Stem(), Ext: a.Ext(), Fingerprint: a.Fingerprint}
}

// PublicPath returns the public URL path for this asset: the URL
// prefix, the logical directory, and the hashed name.
func (a *Asset) PublicPath(urlPrefix string) string {
	name := a.HashedName().String()
	if dir := a.Dir(); dir != "" {
		return urlPrefix + dir + "/" + name
	}
	return urlPrefix + name
}

// HashedName is the publicly served, cache-busted file name: the
// content fingerprint is spliced between stem and extension so any
// content change changes every reference to the file.
type HashedName struct {
	Stem        string
	Ext         string
	Fingerprint string
}

// String renders "<stem>.<fingerprint>.<ext>", or "<stem>.<fingerprint>"
// when the file has no extension.
func (n HashedName) String() string {
	if n.Ext == "" {
		return n.Stem + "." + n.Fingerprint
	}
	return n.Stem + "." + n.Fingerprint + "." + n.Ext
}
