package dev

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/danielkjellid/hue/internal/errors"
)

// ChangeType classifies a detected file change.
type ChangeType int

const (
	ChangeGo ChangeType = iota
	ChangeCSS
	ChangeAsset
)

// Change is a debounced file change event.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch, recursively.
	Paths []string

	// Ignore lists directory names to skip.
	Ignore []string

	// Debounce is how long to collect events before reporting. Rapid
	// save bursts from editors collapse into a single change per type.
	Debounce time.Duration
}

// DefaultIgnore lists directory names skipped by default.
var DefaultIgnore = []string{".git", "node_modules", "dist", ".hue", "tmp"}

// Watcher monitors the project tree for changes using fsnotify.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a Watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{config: config}
}

// OnChange sets the callback invoked for each debounced change.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// IsRunning reports whether Start is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Start watches until the context is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New("H302").Wrap(err)
	}
	defer fw.Close()

	for _, root := range w.config.Paths {
		if err := w.addRecursive(fw, root); err != nil {
			return err
		}
	}

	var (
		pending = make(map[ChangeType]Change)
		timer   *time.Timer
		timerC  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.ignored(event.Name) {
				continue
			}

			// New directories need to be added to the watch set.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(fw, event.Name)
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			change := Change{Path: event.Name, Type: classifyChange(event.Name)}
			pending[change.Type] = change
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.config.Debounce)
			}

		case <-timerC:
			w.mu.Lock()
			callback := w.onChange
			w.mu.Unlock()

			if callback != nil {
				for _, change := range pending {
					callback(change)
				}
			}
			pending = make(map[ChangeType]Change)
			timer = nil
			timerC = nil

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			_ = err // transient watch errors are not fatal
		}
	}
}

// addRecursive adds root and every non-ignored subdirectory to the watch
// set.
func (w *Watcher) addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.ignored(path) {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			return errors.New("H302").Wrap(err)
		}
		return nil
	})
}

// ignored reports whether any path segment is an ignored directory name.
func (w *Watcher) ignored(path string) bool {
	normalized := filepath.ToSlash(path)
	for _, segment := range strings.Split(normalized, "/") {
		for _, ignore := range w.config.Ignore {
			if segment == ignore {
				return true
			}
		}
	}
	return false
}

// classifyChange determines the change type from the file extension.
func classifyChange(path string) ChangeType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return ChangeGo
	case ".css", ".scss", ".sass", ".less":
		return ChangeCSS
	default:
		return ChangeAsset
	}
}
