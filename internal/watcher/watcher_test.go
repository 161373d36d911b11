package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) get() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestFileChanged_Debounces(t *testing.T) {
	var r recorder
	w := NewWatcher(20*time.Millisecond, r.record)
	defer w.Stop()

	w.FileChanged("/pages/b.md")
	w.FileChanged("/pages/a.md")
	w.FileChanged("/pages/b.md")

	require.Eventually(t, func() bool { return len(r.get()) == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, []string{"/pages/a.md", "/pages/b.md"}, r.get()[0])
}

func TestFileChanged_Ignores(t *testing.T) {
	var r recorder
	w := NewWatcherWithConfig(Config{
		DebounceDelay: 10 * time.Millisecond,
		Filter:        func(path string) bool { return strings.HasSuffix(path, ".md") },
	}, r.record)
	defer w.Stop()

	for _, p := range []string{
		"/pages/.a.md.swp",
		"/pages/a.md~",
		"/pages/4913",
		"/pages/.git/index",
		"/pages/notes.txt",
		"/pages/swipetabs.log",
	} {
		w.FileChanged(p)
	}
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, r.get())

	w.FileChanged("/pages/a.md")
	require.Eventually(t, func() bool { return len(r.get()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestStart_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	var r recorder
	w := NewWatcher(20*time.Millisecond, r.record)
	require.NoError(t, w.Start(dir))
	defer w.Stop()

	path := filepath.Join(dir, "page.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hi"), 0o644))

	require.Eventually(t, func() bool {
		for _, batch := range r.get() {
			for _, p := range batch {
				if p == path {
					return true
				}
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStart_MissingDir(t *testing.T) {
	w := NewWatcher(time.Millisecond, nil)
	require.Error(t, w.Start(filepath.Join(t.TempDir(), "missing")))
	w.Stop()
}

func TestStop_Twice(t *testing.T) {
	w := NewWatcher(time.Millisecond, nil)
	w.Stop()
	require.NotPanics(t, w.Stop)
}
