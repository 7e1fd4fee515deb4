// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// Package codegen renders a namespace tree into Go source and writes
// it out atomically.
//
// The emitted package is self-contained: it declares its own File type
// and lookup registry, so consumers import only the generated package,
// not this module. Emission is a single pass over the finished tree in
// its stable order; running the generator twice over an unchanged asset
// tree produces byte-identical output.
package codegen

import (
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/numbyfinance/cacheb/lib/mimetype"
	"github.com/numbyfinance/cacheb/lib/nstree"
)

// Options configures emission.
type Options struct {
	// PackageName is the generated package's name. Defaults to
	// "assets".
	PackageName string

	// URLPrefix is prepended to every public path. Defaults to
	// "/static/".
	URLPrefix string

	// MIME resolves file extensions to content types. Nil uses the
	// builtin table.
	MIME *mimetype.Table
}

// InvariantError reports an internal inconsistency detected just
// before emission: a collision or a malformed tree that earlier stages
// should have rejected, or generated source that fails to parse. It
// indicates a bug in the pipeline, not bad input, and is never
// retried.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "codegen invariant violated: " + e.Reason
}

// leaf pairs a tree leaf with its render-time derived values.
type leaf struct {
	// expr is the Go expression naming the generated binding, e.g.
	// "CSS.MainCSS" or "RobotsTXT" for a root-level asset.
	expr       string
	publicPath string
	node       *nstree.Node
}

// Emit renders the tree into a gofmt-formatted Go source file. The
// tree must be complete: every leaf fingerprinted, every level free of
// identifier collisions. Violations surface as InvariantError — the
// stages before emission are responsible for catching them with
// user-facing errors, so hitting one here is a pipeline bug.
func Emit(root *nstree.Node, opts Options) ([]byte, error) {
	if opts.PackageName == "" {
		opts.PackageName = "assets"
	}
	if opts.URLPrefix == "" {
		opts.URLPrefix = "/static/"
	}
	if !token.IsIdentifier(opts.PackageName) {
		return nil, &InvariantError{Reason: fmt.Sprintf("package name %q is not a legal identifier", opts.PackageName)}
	}

	leaves, err := gatherLeaves(root, opts, nil)
	if err != nil {
		return nil, err
	}
	if err := checkRegistry(leaves); err != nil {
		return nil, err
	}
	if err := checkTypeNames(root, nil, nil, make(map[string]string)); err != nil {
		return nil, err
	}

	var buf strings.Builder
	writeHeader(&buf, opts.PackageName)
	writeRuntime(&buf)
	writeTree(&buf, root, opts)
	writeTypes(&buf, root, nil)
	writeRegistry(&buf, leaves)

	formatted, err := format.Source([]byte(buf.String()))
	if err != nil {
		return nil, &InvariantError{Reason: fmt.Sprintf("generated source does not parse: %v", err)}
	}
	return formatted, nil
}

// gatherLeaves walks the tree in order, deriving each leaf's binding
// expression and public path, and re-checks per-level identifier
// uniqueness on the way.
func gatherLeaves(node *nstree.Node, opts Options, chain []string) ([]leaf, error) {
	seen := make(map[string]bool, len(node.Children))
	var leaves []leaf

	for _, child := range node.Children {
		if child.Ident == "" || seen[child.Ident] {
			return nil, &InvariantError{Reason: fmt.Sprintf("duplicate or empty identifier %q under %q", child.Ident, strings.Join(chain, "."))}
		}
		seen[child.Ident] = true

		if child.IsLeaf() {
			if child.Asset.Fingerprint == "" {
				return nil, &InvariantError{Reason: fmt.Sprintf("asset %s reached emission without a fingerprint", child.Asset.Source)}
			}
			leaves = append(leaves, leaf{
				expr:       strings.Join(append(chain, child.Ident), "."),
				publicPath: child.Asset.PublicPath(opts.URLPrefix),
				node:       child,
			})
			continue
		}

		nested, err := gatherLeaves(child, opts, append(chain, child.Ident))
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, nested...)
	}
	return leaves, nil
}

// checkRegistry verifies that public paths are pairwise distinct. Two
// assets can only share a public path by sharing directory, stem,
// extension, and fingerprint, which the collision check upstream makes
// impossible — so a duplicate here is an invariant violation.
func checkRegistry(leaves []leaf) error {
	seen := make(map[string]string, len(leaves))
	for _, l := range leaves {
		if first, dup := seen[l.publicPath]; dup {
			return &InvariantError{Reason: fmt.Sprintf("public path %q emitted for both %s and %s", l.publicPath, first, l.node.Asset.Source)}
		}
		seen[l.publicPath] = l.node.Asset.Source
	}
	return nil
}

// checkTypeNames verifies that directory struct type names are
// pairwise distinct across the whole tree. Identifier uniqueness is
// only per level, so without the underscore join in typeName two
// distinct hierarchies (foo-bar/ versus foo/bar/) would derive the
// same type name and the output would redeclare it; this check
// backstops typeName the same way checkRegistry backstops public
// paths.
func checkTypeNames(node *nstree.Node, chain, dirs []string, seen map[string]string) error {
	for _, child := range node.Children {
		if child.IsLeaf() {
			continue
		}
		childChain := append(chain, child.Ident)
		childDirs := append(dirs, child.Name)
		name := typeName(childChain)
		path := strings.Join(childDirs, "/") + "/"
		if first, dup := seen[name]; dup {
			return &InvariantError{Reason: fmt.Sprintf("directory type %s derived for both %s and %s", name, first, path)}
		}
		seen[name] = path
		if err := checkTypeNames(child, childChain, childDirs, seen); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(buf *strings.Builder, packageName string) {
	fmt.Fprintf(buf, "// Code generated by cacheb. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "// Package %s exposes fingerprinted static assets as compile-checked\n", packageName)
	fmt.Fprintf(buf, "// symbols. Each binding's Name embeds a content fingerprint, so any\n")
	fmt.Fprintf(buf, "// change to an asset's bytes changes every reference to it.\n")
	fmt.Fprintf(buf, "package %s\n\n", packageName)
}

// writeRuntime emits the fixed part of the generated package: the File
// type and the registry accessors.
func writeRuntime(buf *strings.Builder) {
	buf.WriteString(`// File describes one fingerprinted static asset.
type File struct {
	// Name is the public, cache-busted path the asset is served under.
	Name string

	// Path is the original source file this entry was generated from.
	Path string

	// MIME is the content type for the file.
	MIME string
}

// String returns the public path, so a File can be interpolated
// directly into markup.
func (f File) String() string { return f.Name }

// Lookup returns the file registered under the given public path. The
// second result is false when no asset was generated for that path.
func Lookup(name string) (File, bool) {
	f, ok := files[name]
	return f, ok
}

// Files returns every generated asset, ordered by public path.
func Files() []File {
	out := make([]File, len(all))
	copy(out, all)
	return out
}

`)
}

// writeTree emits one var per root-level entry: a File literal for
// root assets, a directory-struct literal for subdirectories.
func writeTree(buf *strings.Builder, root *nstree.Node, opts Options) {
	for _, child := range root.Children {
		if child.IsLeaf() {
			fmt.Fprintf(buf, "// %s is generated from %s.\n", child.Ident, strconv.Quote(child.Asset.Source))
			fmt.Fprintf(buf, "var %s = %s\n\n", child.Ident, fileLiteral(child, opts))
			continue
		}
		fmt.Fprintf(buf, "// %s mirrors the %s asset directory.\n", child.Ident, strconv.Quote(child.Name+"/"))
		fmt.Fprintf(buf, "var %s = ", child.Ident)
		writeBranchLiteral(buf, child, []string{child.Ident}, opts, 0)
		buf.WriteString("\n\n")
	}
}

func writeBranchLiteral(buf *strings.Builder, node *nstree.Node, chain []string, opts Options, depth int) {
	indent := strings.Repeat("\t", depth)
	fmt.Fprintf(buf, "%s{\n", typeName(chain))
	for _, child := range node.Children {
		if child.IsLeaf() {
			fmt.Fprintf(buf, "%s\t%s: %s,\n", indent, child.Ident, fileLiteral(child, opts))
			continue
		}
		fmt.Fprintf(buf, "%s\t%s: ", indent, child.Ident)
		writeBranchLiteral(buf, child, append(chain, child.Ident), opts, depth+1)
		buf.WriteString(",\n")
	}
	fmt.Fprintf(buf, "%s}", indent)
}

// writeTypes emits the unexported struct type per directory, in tree
// order. checkTypeNames has already verified the names are pairwise
// distinct.
func writeTypes(buf *strings.Builder, node *nstree.Node, chain []string) {
	for _, child := range node.Children {
		if child.IsLeaf() {
			continue
		}
		childChain := append(chain, child.Ident)
		fmt.Fprintf(buf, "// %s is the %s directory scope.\n", typeName(childChain), strconv.Quote(child.Name+"/"))
		fmt.Fprintf(buf, "type %s struct {\n", typeName(childChain))
		for _, entry := range child.Children {
			if entry.IsLeaf() {
				fmt.Fprintf(buf, "\t%s File\n", entry.Ident)
			} else {
				fmt.Fprintf(buf, "\t%s %s\n", entry.Ident, typeName(append(childChain, entry.Ident)))
			}
		}
		buf.WriteString("}\n\n")
		writeTypes(buf, child, childChain)
	}
}

// writeRegistry emits the flat lookup table: the ordered slice backing
// Files and the public-path map backing Lookup. Both reference the
// tree vars rather than repeating literals.
func writeRegistry(buf *strings.Builder, leaves []leaf) {
	ordered := make([]leaf, len(leaves))
	copy(ordered, leaves)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].publicPath < ordered[j].publicPath })

	buf.WriteString("var all = []File{\n")
	for _, l := range ordered {
		fmt.Fprintf(buf, "\t%s,\n", l.expr)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var files = map[string]File{\n")
	for _, l := range ordered {
		fmt.Fprintf(buf, "\t%s: %s,\n", strconv.Quote(l.publicPath), l.expr)
	}
	buf.WriteString("}\n")
}

func fileLiteral(node *nstree.Node, opts Options) string {
	a := node.Asset
	return fmt.Sprintf("File{Name: %s, Path: %s, MIME: %s}",
		strconv.Quote(a.PublicPath(opts.URLPrefix)),
		strconv.Quote(a.Source),
		strconv.Quote(opts.MIME.ByExtension(a.Ext())))
}

// typeName derives the unexported struct type name for a directory
// from its identifier chain: ["CSS", "Vendor"] yields "dirCSS_Vendor".
// Sanitized identifiers never contain an underscore, so the join is
// injective: distinct chains always yield distinct type names.
func typeName(chain []string) string {
	return "dir" + strings.Join(chain, "_")
}
