package tailwind

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestBinaryName(t *testing.T) {
	name, err := binaryName()
	if err != nil {
		t.Skipf("no binary published for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	if !strings.HasPrefix(name, "tailwindcss-") {
		t.Errorf("binary name %q should start with tailwindcss-", name)
	}

	switch runtime.GOOS {
	case "linux":
		if !strings.Contains(name, "linux") {
			t.Errorf("binary name %q should contain linux", name)
		}
	case "darwin":
		if !strings.Contains(name, "macos") {
			t.Errorf("binary name %q should contain macos", name)
		}
	case "windows":
		if !strings.HasSuffix(name, ".exe") {
			t.Errorf("binary name %q should end in .exe", name)
		}
	}
}

func TestNewBinaryDefaults(t *testing.T) {
	b := NewBinary("")
	if b.Version != DefaultVersion {
		t.Errorf("Version = %q, want %q", b.Version, DefaultVersion)
	}
	if b.BinDir == "" {
		t.Error("BinDir should not be empty")
	}

	pinned := NewBinary("v4.0.9")
	if pinned.Version != "v4.0.9" {
		t.Errorf("Version = %q, want v4.0.9", pinned.Version)
	}
}

func TestEnsureInstalledDownloads(t *testing.T) {
	name, err := binaryName()
	if err != nil {
		t.Skip("unsupported platform")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, name) {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("#!/bin/sh\nexit 0\n"))
	}))
	defer srv.Close()

	b := NewBinary("v4.1.18")
	b.BinDir = t.TempDir()
	b.DownloadBaseURL = srv.URL
	b.HTTPClient = srv.Client()

	var messages []string
	path, err := b.EnsureInstalled(context.Background(), func(msg string) {
		messages = append(messages, msg)
	})
	if err != nil {
		t.Fatalf("EnsureInstalled: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("binary missing after install: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
		t.Error("installed binary is not executable")
	}
	if !strings.Contains(path, "v4.1.18") {
		t.Errorf("binary path %q should be version-scoped", path)
	}
	if len(messages) == 0 {
		t.Error("expected progress messages during download")
	}
	if !b.IsInstalled() {
		t.Error("IsInstalled() = false after install")
	}

	// Second call must hit the cache, not the server.
	srv.Close()
	if _, err := b.EnsureInstalled(context.Background(), nil); err != nil {
		t.Errorf("cached EnsureInstalled: %v", err)
	}
}

func TestEnsureInstalledDownloadError(t *testing.T) {
	if _, err := binaryName(); err != nil {
		t.Skip("unsupported platform")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	b := NewBinary("")
	b.BinDir = t.TempDir()
	b.DownloadBaseURL = srv.URL
	b.HTTPClient = srv.Client()

	if _, err := b.EnsureInstalled(context.Background(), nil); err == nil {
		t.Fatal("expected error for 404 download")
	}

	// No half-written binary may remain.
	entries, _ := os.ReadDir(filepath.Join(b.BinDir, b.Version))
	for _, entry := range entries {
		t.Errorf("leftover file after failed download: %s", entry.Name())
	}
}

func TestBuildArgs(t *testing.T) {
	args := buildArgs(BuildConfig{InputPath: "in.css", OutputPath: "out.css", Minify: true})
	want := []string{"-i", "in.css", "-o", "out.css", "--minify"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}
