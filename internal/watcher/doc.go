// Package watcher reports file changes with debouncing.
//
// Editors save files in bursts: a write, a rename, a chmod, sometimes a
// temporary file. FileWatcher collects the paths touched during a burst and
// calls its callback once things have been quiet for the debounce delay.
//
// Events come from fsnotify on the watched directories. Callers can also
// feed paths in directly with FileChanged, which is what the tests do.
//
//	w := watcher.NewWatcher(200*time.Millisecond, func(paths []string) {
//	    broker.Publish(events.Event{Type: events.FilesChangedEvent, Payload: events.FilesChangedPayload{Paths: paths}})
//	})
//	if err := w.Start(pagesDir, configDir); err != nil {
//	    return err
//	}
//	defer w.Stop()
package watcher
