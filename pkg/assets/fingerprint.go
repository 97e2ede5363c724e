package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hashLen is the number of hex characters kept from the content hash.
const hashLen = 8

// FingerprintName derives the fingerprinted filename for name given the
// file's content hash: "styles.css" + "a1b2c3d4" -> "styles.a1b2c3d4.css".
func FingerprintName(name, hash string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s.%s%s", base, hash, ext)
}

// HashContent returns the truncated hex sha256 of data.
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:hashLen]
}

// Fingerprint copies the file at src into its directory under a
// content-hashed name and records the mapping in the manifest. It returns
// the fingerprinted filename.
func Fingerprint(src string, m *Manifest) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", src, err)
	}

	name := filepath.Base(src)
	fingerprinted := FingerprintName(name, HashContent(data))

	dst := filepath.Join(filepath.Dir(src), fingerprinted)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}

	m.Set(name, fingerprinted)
	return fingerprinted, nil
}

// FingerprintDir fingerprints every regular file directly under dir,
// skipping the manifest itself and files that already carry a fingerprint
// from a previous build. It writes the resulting manifest.json into dir.
func FingerprintDir(dir string) (*Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	m := NewManifest()
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == ManifestName {
			continue
		}
		if looksFingerprinted(entry.Name()) {
			continue
		}
		if _, err := Fingerprint(filepath.Join(dir, entry.Name()), m); err != nil {
			return nil, err
		}
	}

	if err := m.WriteFile(filepath.Join(dir, ManifestName)); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	return m, nil
}

// looksFingerprinted reports whether name already has a hash segment,
// i.e. "styles.a1b2c3d4.css".
func looksFingerprinted(name string) bool {
	parts := strings.Split(name, ".")
	if len(parts) < 3 {
		return false
	}
	hash := parts[len(parts)-2]
	if len(hash) != hashLen {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
