package config

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/marcus/showmore/internal/logger"
	"github.com/marcus/showmore/internal/showmore"
)

// ErrWatcherClosed is returned by Next after Close.
var ErrWatcherClosed = errors.New("config watcher closed")

// Watcher reloads the attribute file when it changes on disk.
type Watcher struct {
	path string
	fw   *fsnotify.Watcher
}

// Watch starts watching path. The parent directory is watched so that
// editors replacing the file atomically are still noticed.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{path: abs, fw: fw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Next blocks until the file is written or recreated, then loads it.
func (w *Watcher) Next() (showmore.Config, error) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return showmore.Config{}, ErrWatcherClosed
			}
			if !w.relevant(ev) {
				continue
			}
			logger.Debug("attribute file changed", "path", ev.Name, "op", ev.Op.String())
			return Load(w.path)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return showmore.Config{}, ErrWatcherClosed
			}
			logger.Warn("attribute watcher error", "error", err)
		}
	}
}

// relevant accepts writes and creates of the watched file. An atomic save
// (rename of a temp file onto the path) arrives as a Create. Rename and
// Remove of the path mean the file went away and are left to the Create that
// replaces it.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// Close stops the watcher; a pending Next returns ErrWatcherClosed.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
