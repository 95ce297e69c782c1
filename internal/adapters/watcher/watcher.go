// Package watcher watches the source tree and coalesces changes into rebuild triggers.
package watcher

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/rodata/internal/adapters/fs"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements recursive file system watching using fsnotify.
// Directories matched by the exclude patterns are neither watched nor reported.
type Watcher struct {
	walker *fs.Walker
	logger ports.Logger

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	root      string
	matcher   *ignore.GitIgnore
	events    chan ports.WatchEvent
}

// NewWatcher creates a watcher. No OS resources are held until Start.
func NewWatcher(walker *fs.Walker, log ports.Logger) *Watcher {
	return &Watcher{
		walker: walker,
		logger: log,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching root recursively. exclude holds gitignore-style patterns
// relative to root.
func (w *Watcher) Start(ctx context.Context, root string, exclude ...string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}

	w.mu.Lock()
	w.fsWatcher = fsWatcher
	w.root = root
	w.matcher = ignore.CompileIgnoreLines(exclude...)
	w.mu.Unlock()

	for dir := range w.walker.WalkDirs(root, exclude) {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	go w.processEvents(ctx, fsWatcher)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
// The iterator ends when the watcher stops or its context is cancelled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok || w.ignored(event.Name) {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

			// New directories are watched as they appear.
			if watchEvent.Operation == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					for dir := range w.walker.WalkDirs(event.Name, nil) {
						_ = fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err.Error())
		}
	}
}

// ignored reports whether path lies in an excluded or metadata directory.
func (w *Watcher) ignored(path string) bool {
	w.mu.Lock()
	root, matcher := w.root, w.matcher
	w.mu.Unlock()

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == domain.RodataDirName || matcher.MatchesPath(rel) || matcher.MatchesPath(rel+"/") {
		return true
	}
	dir := filepath.ToSlash(filepath.Dir(rel))
	return dir != "." && (dir == domain.RodataDirName || matcher.MatchesPath(dir+"/"))
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
