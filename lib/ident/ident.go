// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// Package ident converts filesystem names into legal, readable Go
// identifiers for the generated asset namespace.
//
// Sanitization is deterministic: the same raw name always produces the
// same identifier. It is deliberately lossy — "Main.CSS" and "main.css"
// both sanitize to "MainCSS" — and the namespace tree treats two
// distinct sibling names mapping to one identifier as a hard build
// failure rather than renaming one of them. Silent renaming would make
// two different assets indistinguishable by name, defeating the entire
// point of compile-checked asset references.
package ident

import (
	"strings"
	"unicode"
)

// initialisms are name parts rendered in all caps, following Go naming
// convention for common abbreviations and file formats.
var initialisms = map[string]bool{
	"api":   true,
	"css":   true,
	"eot":   true,
	"gif":   true,
	"htm":   true,
	"html":  true,
	"http":  true,
	"ico":   true,
	"id":    true,
	"jpeg":  true,
	"jpg":   true,
	"js":    true,
	"json":  true,
	"md":    true,
	"mp3":   true,
	"mp4":   true,
	"otf":   true,
	"pdf":   true,
	"png":   true,
	"svg":   true,
	"ttf":   true,
	"txt":   true,
	"ui":    true,
	"url":   true,
	"wasm":  true,
	"webp":  true,
	"woff":  true,
	"woff2": true,
	"xml":   true,
	"yaml":  true,
	"yml":   true,
}

// reserved are Go keywords and predeclared identifiers. Sanitized names
// that land on one are suffixed with an underscore. Exported PascalCase
// output cannot actually collide with these (they are all lowercase),
// but Sanitize stays total for arbitrary input rather than relying on
// that accident.
var reserved = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
	"any": true, "bool": true, "byte": true, "comparable": true,
	"complex64": true, "complex128": true, "error": true, "float32": true,
	"float64": true, "int": true, "int8": true, "int16": true,
	"int32": true, "int64": true, "rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true,
	"true": true, "false": true, "iota": true, "nil": true,
}

// Sanitize converts a raw directory or file name into an exported Go
// identifier. The name is split on every rune outside [A-Za-z0-9], each
// part is title-cased (all-caps for recognized initialisms, so
// "main.css" becomes "MainCSS"), and the parts are joined. A result
// starting with a digit is prefixed with "N" ("404.html" → "N404HTML");
// a name with no usable runes becomes "X".
func Sanitize(raw string) string {
	var builder strings.Builder
	for _, part := range splitParts(raw) {
		if initialisms[strings.ToLower(part)] {
			builder.WriteString(strings.ToUpper(part))
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		builder.WriteString(string(runes))
	}

	name := builder.String()
	if name == "" {
		return "X"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "N" + name
	}
	if reserved[name] {
		name += "_"
	}
	return name
}

// splitParts breaks raw into maximal runs of ASCII letters and digits.
// Every other rune (dots, dashes, spaces, non-ASCII) is a separator.
func splitParts(raw string) []string {
	isWord := func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}
	return strings.FieldsFunc(raw, func(r rune) bool { return !isWord(r) })
}
