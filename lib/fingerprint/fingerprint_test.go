// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBytesDeterministic(t *testing.T) {
	content := []byte("body { margin: 0 }")
	first := Bytes(content)
	second := Bytes(content)
	if first != second {
		t.Errorf("Bytes not deterministic: %q vs %q", first, second)
	}
	if len(first) != Length {
		t.Errorf("fingerprint length = %d, want %d", len(first), Length)
	}
}

func TestBytesURLSafe(t *testing.T) {
	token := Bytes([]byte("console.log(1)"))
	for _, r := range token {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Errorf("fingerprint %q contains non-hex character %q", token, r)
		}
	}
}

func TestBytesContentSensitive(t *testing.T) {
	content := []byte("body { margin: 0 }")
	changed := append([]byte(nil), content...)
	changed[0] ^= 1

	if Bytes(content) == Bytes(changed) {
		t.Error("single-byte change did not change the fingerprint")
	}
}

func TestFileMatchesBytes(t *testing.T) {
	content := []byte("<svg></svg>")
	path := filepath.Join(t.TempDir(), "icon.svg")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if want := Bytes(content); got != want {
		t.Errorf("File = %q, want %q", got, want)
	}
}

func TestFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.css")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if want := Bytes(nil); got != want {
		t.Errorf("File(empty) = %q, want %q", got, want)
	}
}

func TestFileNonexistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.js")
	if _, err := File(path); err == nil {
		t.Fatal("File should fail for a nonexistent file")
	}
}
