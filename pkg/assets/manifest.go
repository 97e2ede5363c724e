// Package assets handles fingerprinting and resolution of static assets.
//
// Building the stylesheet produces a fingerprinted copy (styles.a1b2c3d4.css)
// plus a manifest.json mapping source names to fingerprinted names:
//
//	{"styles.css": "styles.a1b2c3d4.css"}
//
// At runtime the manifest is loaded and used to resolve the stylesheet URL
// rendered into the document head, so deployed pages always reference the
// exact build they shipped with.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// ManifestName is the filename the build writes next to the assets.
const ManifestName = "manifest.json"

// Manifest maps source asset names to their fingerprinted names.
// It is safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// LoadManifest reads a manifest.json written by a previous build.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return &Manifest{entries: entries}, nil
}

// Resolve returns the fingerprinted name for source, or source unchanged
// when no entry exists.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Has reports whether the manifest contains an entry for source.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[source]
	return ok
}

// Set adds or replaces an entry.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[source] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// All returns a copy of every entry.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// WriteFile serializes the manifest as indented JSON to path.
func (m *Manifest) WriteFile(path string) error {
	m.mu.RLock()
	data, err := json.MarshalIndent(m.entries, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
