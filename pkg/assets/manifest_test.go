package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManifestResolve(t *testing.T) {
	m := NewManifest()
	m.Set("styles.css", "styles.a1b2c3d4.css")

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"found entry", "styles.css", "styles.a1b2c3d4.css"},
		{"missing entry returns original", "unknown.css", "unknown.css"},
		{"empty string returns empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Resolve(tt.source)
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.source, got, tt.expected)
			}
		})
	}
}

func TestManifestHas(t *testing.T) {
	m := NewManifest()
	m.Set("styles.css", "styles.a1b2c3d4.css")

	if !m.Has("styles.css") {
		t.Error("Has(styles.css) = false, want true")
	}
	if m.Has("unknown.css") {
		t.Error("Has(unknown.css) = true, want false")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)

	m := NewManifest()
	m.Set("styles.css", "styles.a1b2c3d4.css")
	m.Set("logo.svg", "logo.deadbeef.svg")

	if err := m.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if loaded.Len() != 2 {
		t.Errorf("Len() = %d, want 2", loaded.Len())
	}
	if got := loaded.Resolve("styles.css"); got != "styles.a1b2c3d4.css" {
		t.Errorf("Resolve(styles.css) = %q", got)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadManifestInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
