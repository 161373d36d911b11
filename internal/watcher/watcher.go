package watcher

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/billie-coop/swipetabs/internal/files"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used by NewWatcherWithConfig.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher monitors file system changes with debouncing.
type FileWatcher struct {
	debounceDelay time.Duration
	ignorePaths   []string
	filter        func(path string) bool

	timer        *time.Timer
	timerMu      sync.Mutex
	pendingPaths map[string]struct{}

	onChange func([]string)
	onError  func(error)

	fsw  *fsnotify.Watcher
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher creates a file watcher with the specified debounce delay.
// The onChange callback is called with the changed paths, sorted, from a
// timer goroutine.
func NewWatcher(debounceDelay time.Duration, onChange func([]string)) *FileWatcher {
	return &FileWatcher{
		debounceDelay: debounceDelay,
		pendingPaths:  make(map[string]struct{}),
		onChange:      onChange,
		stop:          make(chan struct{}),
	}
}

// Config holds watcher configuration.
type Config struct {
	DebounceDelay time.Duration
	IgnorePaths   []string
	// Filter, when set, must accept a path for it to be reported.
	Filter func(path string) bool
	// OnError receives errors reported by the underlying watcher.
	OnError func(error)
}

// NewWatcherWithConfig creates a watcher with custom configuration.
func NewWatcherWithConfig(cfg Config, onChange func([]string)) *FileWatcher {
	if cfg.DebounceDelay == 0 {
		cfg.DebounceDelay = DefaultDebounce
	}
	w := NewWatcher(cfg.DebounceDelay, onChange)
	if len(cfg.IgnorePaths) > 0 {
		w.ignorePaths = cfg.IgnorePaths
	}
	w.filter = cfg.Filter
	w.onError = cfg.OnError
	return w
}

// Start watches dirs (not recursively) until Stop.
func (w *FileWatcher) Start(dirs ...string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.fsw = fsw

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if event.Op == fsnotify.Chmod {
					continue
				}
				w.FileChanged(event.Name)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				if w.onError != nil {
					w.onError(err)
				}
			case <-w.stop:
				return
			}
		}
	}()
	return nil
}

// FileChanged notifies the watcher of a file change.
// Multiple rapid calls are debounced into a single onChange callback.
func (w *FileWatcher) FileChanged(path string) {
	if w.shouldIgnore(path) {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	w.pendingPaths[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceDelay, w.processPending)
}

// SetIgnorePaths updates the path fragments to ignore.
func (w *FileWatcher) SetIgnorePaths(paths []string) {
	w.ignorePaths = paths
}

// Stop shuts down the watcher. Pending changes are dropped.
func (w *FileWatcher) Stop() {
	select {
	case <-w.stop:
		return
	default:
		close(w.stop)
	}
	w.wg.Wait()
	if w.fsw != nil {
		w.fsw.Close()
	}

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pendingPaths = make(map[string]struct{})
	w.timerMu.Unlock()
}

// processPending is called after debounce delay.
func (w *FileWatcher) processPending() {
	w.timerMu.Lock()
	paths := make([]string, 0, len(w.pendingPaths))
	for path := range w.pendingPaths {
		paths = append(paths, path)
	}
	w.pendingPaths = make(map[string]struct{})
	w.timer = nil
	w.timerMu.Unlock()

	// Trigger callback (outside lock)
	if len(paths) > 0 && w.onChange != nil {
		slices.Sort(paths)
		w.onChange(paths)
	}
}

// shouldIgnore filters out editor droppings and anything the filter rejects.
func (w *FileWatcher) shouldIgnore(path string) bool {
	for _, ignore := range w.ignorePaths {
		if strings.Contains(path, ignore) {
			return true
		}
	}
	if files.ShouldIgnore(path) {
		return true
	}
	return w.filter != nil && !w.filter(path)
}
