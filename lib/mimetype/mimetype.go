// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// Package mimetype maps asset file extensions to MIME types.
//
// The table is static and self-contained: it never consults the OS MIME
// registry (/etc/mime.types and friends), because registry contents vary
// across machines and the generated output must be byte-identical
// wherever it is produced. Unknown extensions fall back to
// application/octet-stream rather than failing the build.
package mimetype

import "strings"

// DefaultType is returned for extensions with no table entry.
const DefaultType = "application/octet-stream"

// builtin covers the extensions that show up in web asset trees. Keys
// are lowercase without the leading dot.
var builtin = map[string]string{
	"avif":  "image/avif",
	"css":   "text/css",
	"csv":   "text/csv",
	"eot":   "application/vnd.ms-fontobject",
	"gif":   "image/gif",
	"htm":   "text/html",
	"html":  "text/html",
	"ico":   "image/x-icon",
	"jpeg":  "image/jpeg",
	"jpg":   "image/jpeg",
	"js":    "application/javascript",
	"json":  "application/json",
	"map":   "application/json",
	"md":    "text/markdown",
	"mjs":   "application/javascript",
	"mp3":   "audio/mpeg",
	"mp4":   "video/mp4",
	"otf":   "font/otf",
	"pdf":   "application/pdf",
	"png":   "image/png",
	"svg":   "image/svg+xml",
	"ttf":   "font/ttf",
	"txt":   "text/plain",
	"wasm":  "application/wasm",
	"webm":  "video/webm",
	"webp":  "image/webp",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"xml":   "text/xml",
}

// Table resolves extensions to MIME types, with optional overrides on
// top of the builtin set. The zero value uses the builtin set alone.
type Table struct {
	overrides map[string]string
}

// NewTable returns a Table extended with the given overrides. Override
// keys may carry a leading dot and any case; both are normalized.
// Overrides win over builtin entries, so a manifest can both add new
// extensions and re-map existing ones.
func NewTable(overrides map[string]string) *Table {
	table := &Table{}
	for extension, mimeType := range overrides {
		if table.overrides == nil {
			table.overrides = make(map[string]string, len(overrides))
		}
		table.overrides[normalize(extension)] = mimeType
	}
	return table
}

// ByExtension returns the MIME type for the given extension (with or
// without the leading dot, any case). Unknown extensions — including
// the empty one — resolve to [DefaultType].
func (t *Table) ByExtension(extension string) string {
	key := normalize(extension)
	if t != nil {
		if mimeType, ok := t.overrides[key]; ok {
			return mimeType
		}
	}
	if mimeType, ok := builtin[key]; ok {
		return mimeType
	}
	return DefaultType
}

func normalize(extension string) string {
	return strings.ToLower(strings.TrimPrefix(extension, "."))
}
