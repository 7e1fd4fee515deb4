// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package asset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTree creates files (relative path → content) under dir.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for relative, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(relative))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
}

func logicalPaths(assets []*Asset) []string {
	var out []string
	for _, a := range assets {
		out = append(out, strings.Join(a.Logical, "/"))
	}
	return out
}

func TestCollectWalksAndSorts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"img/logo.png": "png bytes",
		"css/main.css": "body {}",
		"app.js":       "console.log(1)",
	})

	assets, err := Collect([]string{root}, nil, CollectOptions{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	got := logicalPaths(assets)
	want := []string{"app.js", "css/main.css", "img/logo.png"}
	if len(got) != len(want) {
		t.Fatalf("collected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("asset %d = %q, want %q (order must be lexicographic)", i, got[i], want[i])
		}
	}
}

func TestCollectDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.css": "b", "a.css": "a", "sub/z.js": "z", "sub/a.js": "a",
	})

	first, err := Collect([]string{root}, nil, CollectOptions{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	second, err := Collect([]string{root}, nil, CollectOptions{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	a, b := logicalPaths(first), logicalPaths(second)
	if strings.Join(a, ",") != strings.Join(b, ",") {
		t.Errorf("order not reproducible: %v vs %v", a, b)
	}
}

func TestCollectExtraFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"css/main.css": "body {}"})

	outside := t.TempDir()
	writeTree(t, outside, map[string]string{"robots.txt": "User-agent: *"})
	extra := filepath.Join(outside, "robots.txt")

	assets, err := Collect([]string{root}, []string{extra}, CollectOptions{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var found *Asset
	for _, a := range assets {
		if a.Base() == "robots.txt" {
			found = a
		}
	}
	if found == nil {
		t.Fatal("extra file not collected")
	}
	if len(found.Logical) != 1 {
		t.Errorf("extra file logical path = %v, want single basename segment", found.Logical)
	}
}

func TestCollectMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir")
	if _, err := Collect([]string{missing}, nil, CollectOptions{}); err == nil {
		t.Fatal("Collect should fail for a missing root")
	}
}

func TestCollectMissingExtra(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-file.txt")
	if _, err := Collect(nil, []string{missing}, CollectOptions{}); err == nil {
		t.Fatal("Collect should fail for a missing extra file")
	}
}

func TestCollectIncludeExclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"css/main.css":  "a",
		"css/main.scss": "b",
		"js/app.js":     "c",
	})

	assets, err := Collect([]string{root}, nil, CollectOptions{
		Include: []string{"**/*.css", "**/*.js"},
		Exclude: []string{"js/**"},
	})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	got := logicalPaths(assets)
	if len(got) != 1 || got[0] != "css/main.css" {
		t.Errorf("filtered collection = %v, want [css/main.css]", got)
	}
}

func TestCollectBadPattern(t *testing.T) {
	if _, err := Collect(nil, nil, CollectOptions{Include: []string{"[unclosed"}}); err == nil {
		t.Fatal("Collect should reject a malformed pattern")
	}
}

func TestCollectSkipsSymlinkedDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"css/main.css": "a"})

	target := t.TempDir()
	writeTree(t, target, map[string]string{"inner.css": "b"})
	if err := os.Symlink(target, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	assets, err := Collect([]string{root}, nil, CollectOptions{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	for _, a := range assets {
		if a.Logical[0] == "linked" {
			t.Errorf("descended into symlinked directory: %v", a.Logical)
		}
	}
}

func TestCollectDedup(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"app.js": "x"})

	// The same file reachable as a root file and as an extra file
	// must appear once.
	assets, err := Collect([]string{root}, []string{filepath.Join(root, "app.js")}, CollectOptions{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(assets) != 1 {
		t.Errorf("collected %d assets, want 1 after dedup", len(assets))
	}
}

func TestHashedNameString(t *testing.T) {
	tests := []struct {
		name HashedName
		want string
	}{
		{HashedName{Stem: "main", Ext: "css", Fingerprint: "abc123def456"}, "main.abc123def456.css"},
		{HashedName{Stem: "LICENSE", Ext: "", Fingerprint: "abc123def456"}, "LICENSE.abc123def456"},
	}
	for _, tt := range tests {
		if got := tt.name.String(); got != tt.want {
			t.Errorf("HashedName = %q, want %q", got, tt.want)
		}
	}
}

func TestPublicPath(t *testing.T) {
	a := &Asset{Logical: []string{"css", "main.css"}, Fingerprint: "abc123def456"}
	if got, want := a.PublicPath("/static/"), "/static/css/main.abc123def456.css"; got != want {
		t.Errorf("PublicPath = %q, want %q", got, want)
	}

	rootAsset := &Asset{Logical: []string{"robots.txt"}, Fingerprint: "abc123def456"}
	if got, want := rootAsset.PublicPath("/static/"), "/static/robots.abc123def456.txt"; got != want {
		t.Errorf("root PublicPath = %q, want %q", got, want)
	}
}
