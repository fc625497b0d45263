// Package watch implements the long-running mode: re-check on content
// changes, on a schedule, or both, recording every run to the history store.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/doccheck/internal/logfields"
)

// ContentWatcher monitors the content root and fires debounced triggers.
type ContentWatcher struct {
	root     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	triggers chan struct{}
}

// NewContentWatcher creates a watcher over the documentation tree. Rapid
// bursts of filesystem events (editor saves, git checkouts) collapse into a
// single trigger after the debounce period.
func NewContentWatcher(root string, debounce time.Duration) (*ContentWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	cw := &ContentWatcher{
		root:     root,
		watcher:  w,
		debounce: debounce,
		triggers: make(chan struct{}, 1),
	}
	if err := cw.addRecursive(root); err != nil {
		_ = w.Close()
		return nil, err
	}
	return cw, nil
}

// addRecursive watches the root and every non-hidden subdirectory. fsnotify
// does not recurse by itself.
func (cw *ContentWatcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return fs.SkipDir
		}
		return cw.watcher.Add(path)
	})
}

// Triggers returns the debounced trigger channel.
func (cw *ContentWatcher) Triggers() <-chan struct{} { return cw.triggers }

// Start runs the event loop until the context is cancelled.
func (cw *ContentWatcher) Start(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			_ = cw.watcher.Close()
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			// New directories must be added to the watch set as they appear.
			if event.Has(fsnotify.Create) {
				_ = cw.addRecursive(cw.root)
			}
			if timer == nil {
				timer = time.NewTimer(cw.debounce)
				timerC = timer.C
			} else {
				timer.Reset(cw.debounce)
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Content watcher error", logfields.Error(err))
		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case cw.triggers <- struct{}{}:
			default: // a trigger is already pending
			}
		}
	}
}
