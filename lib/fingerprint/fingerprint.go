// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint derives short content tokens for static assets.
//
// A fingerprint is the first [Length] hex characters of the BLAKE3
// digest of a file's bytes. It is a pure function of content: filesystem
// metadata (mtime, permissions, path) never enters the hash, so touching
// a file without changing its bytes does not invalidate downstream
// caches. Two files with identical bytes share a fingerprint — the token
// is content-addressed, not identity-addressed.
//
// The token is lowercase hex, so it is safe to embed in a URL path
// segment without escaping.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Length is the fingerprint length in hex characters. 48 bits keeps
// generated file names short while making accidental collisions
// negligible for realistic asset-set sizes; a collision between
// identical-content files is legitimate sharing, not an error.
const Length = 12

// Bytes returns the fingerprint of the given content.
func Bytes(data []byte) string {
	digest := blake3.Sum256(data)
	return hex.EncodeToString(digest[:Length/2])
}

// File computes the fingerprint of the file at path. The file is
// streamed through the hash function in chunks (via io.Copy) to keep
// memory usage constant regardless of file size.
func File(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s for fingerprinting: %w", path, err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("fingerprinting %s: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)[:Length/2]), nil
}
