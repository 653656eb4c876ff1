// Package fswatch watches the pair store file using fsnotify so a chat
// session can reload pairs written by another invocation or a hand edit.
// The store is replaced by rename, which breaks a direct file watch, so
// the parent directory is watched and events are filtered by name.
// Rapid events are debounced (a save produces create+rename bursts).
package fswatch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 100 * time.Millisecond

// Watcher invokes a callback whenever one file changes on disk.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// New creates a watcher for the given file. onChange runs on the watcher
// goroutine whenever the file is created, written, or renamed into place.
func New(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	dir := filepath.Dir(abs)
	name := filepath.Base(abs)

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{fw: fw, done: make(chan struct{})}

	go func() {
		var last time.Time
		for {
			select {
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				now := time.Now()
				if now.Sub(last) < debounceInterval {
					continue
				}
				last = now
				onChange()
			case <-fw.Errors:
				// Watch errors are non-fatal; the session keeps its
				// in-memory state and reloads on the next event.
			case <-w.done:
				return
			}
		}
	}()

	return w, nil
}

// Stop shuts the watcher down. Idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	close(w.done)
	w.fw.Close()
}
