// Package watch re-runs a build step whenever files under a directory change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kubasejdak/sitehooks/internal/logfields"
)

// DefaultDebounce is the quiet period after the last change before a rerun.
const DefaultDebounce = 300 * time.Millisecond

// Watcher runs fn after bursts of filesystem changes under root.
type Watcher struct {
	root     string
	fn       func() error
	debounce time.Duration
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New creates a Watcher for root. fn is called once per debounced burst of
// changes; calls never overlap.
func New(root string, fn func() error, debounce time.Duration, opts ...Option) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{root: root, fn: fn, debounce: debounce, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done. root must exist.
func (w *Watcher) Run(ctx context.Context) error {
	if st, err := os.Stat(w.root); err != nil || !st.IsDir() {
		return fmt.Errorf("watch root not found or not a directory: %s", w.root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, w.root); err != nil {
		return err
	}

	runReq, trigger, stop := w.setupDebouncer()
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.runWorker(ctx, runReq)
	}()
	defer wg.Wait()

	w.logger.Info("Watching for changes", logfields.Path(w.root))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logfields.Error(err))
		}
	}
}

// setupDebouncer returns the request channel, a trigger that (re)arms the
// debounce timer and a stop function for the pending timer.
func (w *Watcher) setupDebouncer() (chan struct{}, func(), func()) {
	var mu sync.Mutex
	var timer *time.Timer
	runReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			select {
			case runReq <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return runReq, trigger, stop
}

// runWorker serializes reruns. A request arriving mid-run is coalesced into
// the buffered channel slot and picked up right after.
func (w *Watcher) runWorker(ctx context.Context, runReq <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-runReq:
			w.logger.Info("Change detected; re-running post-build hook")
			if err := w.fn(); err != nil {
				w.logger.Warn("rerun failed", logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	w.logger.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				slog.Warn("watch add failed", "dir", path, "error", err)
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for hidden, editor swap and OS metadata files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return base == "Thumbs.db"
}
