// Package watch delivers write notifications for a single file using
// OS-native notifications.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to one file. Editors commonly replace files on
// save, which drops a watch registered on the file itself, so the watcher
// registers on the parent directory and filters events by path.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	writes chan struct{}
	errs   chan error
}

// NewFile creates a watcher for the file at path.
func NewFile(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		fsw:    fsw,
		path:   abs,
		writes: make(chan struct{}, 16),
		errs:   make(chan error, 1),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.writes)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if abs, err := filepath.Abs(ev.Name); err != nil || abs != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				select {
				case w.writes <- struct{}{}:
				default:
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.errs <- err
		}
	}
}

// Writes returns the channel of write notifications. The channel is closed
// when the watcher is closed.
func (w *Watcher) Writes() <-chan struct{} { return w.writes }

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher.
func (w *Watcher) Close() error { return w.fsw.Close() }
