// Package watch regenerates the header mapping whenever an input data file
// changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Config configures the file watcher.
type Config struct {
	// Dir is the input directory to watch.
	Dir string

	// Pattern selects the files whose changes trigger a run, relative to Dir.
	Pattern string

	// Debounce is how long to wait for more changes before running.
	Debounce time.Duration

	// Logger for logging events.
	Logger *slog.Logger
}

// RunFunc regenerates the mapping. Errors are logged and watching goes on.
type RunFunc func(ctx context.Context) error

// Watcher watches an input directory and calls a RunFunc after changes.
type Watcher struct {
	config  Config
	run     RunFunc
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changes before running
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation

	runs chan struct{}
}

// NewWatcher creates a new file watcher.
func NewWatcher(config Config, run RunFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if config.Debounce <= 0 {
		config.Debounce = 100 * time.Millisecond
	}

	if config.Pattern == "" {
		config.Pattern = "*.txt"
	}

	return &Watcher{
		config:  config,
		run:     run,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]fsnotify.Op),
		runs:    make(chan struct{}, 1),
	}, nil
}

// Runs receives a value after every completed run. Intended for tests and
// callers that need to observe progress; sends never block.
func (w *Watcher) Runs() <-chan struct{} {
	return w.runs
}

// Run watches until ctx is done. The watched directory must exist.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.addWatches(); err != nil {
		return fmt.Errorf("watching %s: %w", w.config.Dir, err)
	}

	w.logger.Info("File watcher started",
		"dir", w.config.Dir,
		"pattern", w.config.Pattern,
		"debounce", w.config.Debounce)

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// addWatches watches Dir and, for patterns reaching into subdirectories,
// every directory below it.
func (w *Watcher) addWatches() error {
	if !w.recursive() {
		return w.watcher.Add(w.config.Dir)
	}

	return filepath.WalkDir(w.config.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != w.config.Dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		w.addWatch(path)

		return nil
	})
}

func (w *Watcher) recursive() bool {
	return strings.Contains(w.config.Pattern, "**") || strings.ContainsRune(w.config.Pattern, '/')
}

func (w *Watcher) addWatch(path string) {
	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch directory", "path", path, "error", err)
	} else {
		w.logger.Debug("Watching directory", "path", path)
	}
}

// handleFSEvent records a change to a matching file.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}

	if event.Has(fsnotify.Create) && w.recursive() {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addWatch(event.Name)
			return
		}
	}

	rel, err := filepath.Rel(w.config.Dir, event.Name)
	if err != nil {
		return
	}

	if ok, _ := doublestar.PathMatch(w.config.Pattern, rel); !ok {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("File change detected", "path", rel, "op", event.Op.String())
}

// flushPending runs once for all changes accumulated since the last tick.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}

	changed := len(w.pending)
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	w.logger.Info("Regenerating header mapping", "changed_files", changed)

	if err := w.run(ctx); err != nil {
		w.logger.Error("Regeneration failed", "error", err)
	}

	select {
	case w.runs <- struct{}{}:
	default:
	}
}
