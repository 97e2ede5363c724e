// Package tailwind manages the Tailwind CSS standalone binary.
// It handles downloading, caching, and running the binary without requiring
// Node.js.
package tailwind

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/danielkjellid/hue/internal/errors"
)

const (
	// DefaultVersion is the Tailwind CSS version used when the project does
	// not pin one.
	DefaultVersion = "v4.1.18"

	// releaseURL is the base URL for downloading Tailwind binaries.
	releaseURL = "https://github.com/tailwindlabs/tailwindcss/releases/download"

	// binDirName is the per-user cache directory for binaries.
	binDirName = ".hue/bin"
)

// Binary locates and installs the Tailwind CSS standalone binary.
type Binary struct {
	// Version is the Tailwind version, e.g. "v4.1.18".
	Version string

	// BinDir is the directory where binaries are cached.
	BinDir string

	// DownloadBaseURL overrides the release URL, used in tests.
	DownloadBaseURL string

	// HTTPClient is used for downloads. If nil, a default client is used.
	HTTPClient *http.Client

	mu   sync.Mutex
	path string
}

// NewBinary creates a Binary for the given version. An empty version means
// DefaultVersion.
func NewBinary(version string) *Binary {
	if version == "" {
		version = DefaultVersion
	}
	return &Binary{
		Version:         version,
		BinDir:          defaultBinDir(),
		DownloadBaseURL: releaseURL,
	}
}

// defaultBinDir returns the per-user binary cache directory (~/.hue/bin).
func defaultBinDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", binDirName)
	}
	return filepath.Join(home, binDirName)
}

// binaryName returns the release asset name for the current platform.
func binaryName() (string, error) {
	var osName, arch string

	switch runtime.GOOS {
	case "linux":
		osName = "linux"
	case "darwin":
		osName = "macos"
	case "windows":
		osName = "windows"
	default:
		return "", errors.New("H204").
			WithDetail("No Tailwind binary is published for " + runtime.GOOS + "/" + runtime.GOARCH)
	}

	switch runtime.GOARCH {
	case "amd64":
		arch = "x64"
	case "arm64":
		arch = "arm64"
	default:
		return "", errors.New("H204").
			WithDetail("No Tailwind binary is published for " + runtime.GOOS + "/" + runtime.GOARCH)
	}

	name := fmt.Sprintf("tailwindcss-%s-%s", osName, arch)
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name, nil
}

// IsInstalled reports whether the binary is already cached.
func (b *Binary) IsInstalled() bool {
	path, err := b.binaryPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// EnsureInstalled downloads the binary if missing and returns its path.
// progress, if non-nil, receives human-readable status messages.
func (b *Binary) EnsureInstalled(ctx context.Context, progress func(msg string)) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.path != "" {
		return b.path, nil
	}

	path, err := b.binaryPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		b.path = path
		return path, nil
	}

	if err := b.download(ctx, path, progress); err != nil {
		return "", err
	}

	b.path = path
	return path, nil
}

// binaryPath returns where the binary is cached. Binaries are stored
// per-version so upgrades never silently reuse an older binary.
func (b *Binary) binaryPath() (string, error) {
	name, err := binaryName()
	if err != nil {
		return "", err
	}
	return filepath.Join(b.BinDir, b.Version, name), nil
}

func (b *Binary) download(ctx context.Context, dest string, progress func(msg string)) error {
	name, err := binaryName()
	if err != nil {
		return err
	}

	base := b.DownloadBaseURL
	if base == "" {
		base = releaseURL
	}
	url := fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), b.Version, name)

	if progress != nil {
		progress(fmt.Sprintf("Downloading Tailwind CSS %s...", b.Version))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return errors.New("H202").Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.New("H202").Wrap(err)
	}

	client := b.HTTPClient
	if client == nil {
		// The binary is large, allow generous time.
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.New("H202").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("H202").
			WithDetail(fmt.Sprintf("Download returned status %d (URL: %s)", resp.StatusCode, url))
	}

	// Write to a temp file then rename so a failed download never leaves a
	// half-written binary behind.
	tmp := dest + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.New("H202").Wrap(err)
	}

	written, err := io.Copy(f, resp.Body)
	f.Close()
	if err != nil {
		os.Remove(tmp)
		return errors.New("H202").Wrap(err)
	}

	if err := os.Chmod(tmp, 0o755); err != nil {
		os.Remove(tmp)
		return errors.New("H202").Wrap(err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return errors.New("H202").Wrap(err)
	}

	if progress != nil {
		progress(fmt.Sprintf("Downloaded %.1f MB to %s", float64(written)/1024/1024, dest))
	}
	return nil
}

// BuildConfig configures a CSS build.
type BuildConfig struct {
	// InputPath is the source CSS file, relative to ProjectDir.
	InputPath string

	// OutputPath is the built CSS file, relative to ProjectDir.
	OutputPath string

	// ProjectDir is the project root the build runs in.
	ProjectDir string

	// Content lists glob patterns for files scanned for class names.
	Content []string

	// Minify enables CSS minification.
	Minify bool
}

// Builder runs the Tailwind CLI.
type Builder struct {
	binary *Binary

	mu      sync.Mutex
	cmd     *exec.Cmd
	done    chan struct{}
	running bool
}

// NewBuilder creates a Builder using the given binary.
func NewBuilder(binary *Binary) *Builder {
	return &Builder{binary: binary}
}

// Build runs a one-shot CSS build.
func (b *Builder) Build(ctx context.Context, cfg BuildConfig) error {
	if err := checkContent(cfg); err != nil {
		return err
	}

	path, err := b.binary.EnsureInstalled(ctx, nil)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, path, buildArgs(cfg)...)
	cmd.Dir = cfg.ProjectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.New("H203").Wrap(err)
	}
	return nil
}

// StartWatch starts Tailwind in watch mode. It returns once the process has
// started; Stop terminates it.
func (b *Builder) StartWatch(ctx context.Context, cfg BuildConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return nil
	}

	path, err := b.binary.EnsureInstalled(ctx, nil)
	if err != nil {
		return err
	}

	args := append(buildArgs(cfg), "--watch=always")

	// Deliberately not CommandContext: context cancellation elsewhere must
	// not kill the watcher, Stop handles cleanup.
	cmd := exec.Command(path, args...)
	cmd.Dir = cfg.ProjectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return errors.New("H203").Wrap(err)
	}

	b.cmd = cmd
	b.done = make(chan struct{})
	b.running = true

	done := b.done
	go func() {
		_ = cmd.Wait()
		close(done)
		b.mu.Lock()
		b.running = false
		if b.cmd == cmd {
			b.cmd = nil
			b.done = nil
		}
		b.mu.Unlock()
	}()

	return nil
}

// Stop terminates a running watcher.
func (b *Builder) Stop() {
	b.mu.Lock()
	cmd := b.cmd
	done := b.done
	running := b.running
	b.mu.Unlock()

	if !running || cmd == nil || cmd.Process == nil {
		return
	}

	_ = cmd.Process.Kill()
	if done != nil {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}
}

// IsRunning reports whether a watcher is active.
func (b *Builder) IsRunning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

func buildArgs(cfg BuildConfig) []string {
	args := []string{"-i", cfg.InputPath, "-o", cfg.OutputPath}
	if cfg.Minify {
		args = append(args, "--minify")
	}
	return args
}
