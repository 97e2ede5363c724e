package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFingerprintName(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		hash     string
		expected string
	}{
		{"css file", "styles.css", "a1b2c3d4", "styles.a1b2c3d4.css"},
		{"no extension", "LICENSE", "a1b2c3d4", "LICENSE.a1b2c3d4"},
		{"dotted name", "app.min.css", "a1b2c3d4", "app.min.a1b2c3d4.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FingerprintName(tt.file, tt.hash)
			if got != tt.expected {
				t.Errorf("FingerprintName(%q, %q) = %q, want %q", tt.file, tt.hash, got, tt.expected)
			}
		})
	}
}

func TestHashContentDeterministic(t *testing.T) {
	a := HashContent([]byte("body { color: red }"))
	b := HashContent([]byte("body { color: red }"))
	c := HashContent([]byte("body { color: blue }"))

	if a != b {
		t.Errorf("same content hashed differently: %q vs %q", a, b)
	}
	if a == c {
		t.Error("different content produced the same hash")
	}
	if len(a) != hashLen {
		t.Errorf("hash length = %d, want %d", len(a), hashLen)
	}
}

func TestFingerprintDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := FingerprintDir(dir)
	if err != nil {
		t.Fatalf("FingerprintDir: %v", err)
	}

	resolved := m.Resolve("styles.css")
	if resolved == "styles.css" {
		t.Fatal("styles.css was not fingerprinted")
	}
	if !looksFingerprinted(resolved) {
		t.Errorf("resolved name %q does not look fingerprinted", resolved)
	}

	// the fingerprinted copy and the manifest exist on disk
	if _, err := os.Stat(filepath.Join(dir, resolved)); err != nil {
		t.Errorf("fingerprinted file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ManifestName)); err != nil {
		t.Errorf("manifest missing: %v", err)
	}

	// a second run must not re-fingerprint the fingerprinted copy
	m2, err := FingerprintDir(dir)
	if err != nil {
		t.Fatalf("second FingerprintDir: %v", err)
	}
	if m2.Has(resolved) {
		t.Errorf("fingerprinted file %q was fingerprinted again", resolved)
	}
}

func TestLooksFingerprinted(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"styles.a1b2c3d4.css", true},
		{"styles.css", false},
		{"styles.notahash.css", false},
		{"styles.a1b2.css", false},
		{"manifest.json", false},
	}

	for _, tt := range tests {
		if got := looksFingerprinted(tt.name); got != tt.expected {
			t.Errorf("looksFingerprinted(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
