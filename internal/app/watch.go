package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/rodata/internal/adapters/watcher"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/zerr"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	BuildOptions
	// Debounce is the quiet window after the last change before rebuilding.
	Debounce time.Duration
}

// Watch builds the workspace, then rebuilds it whenever a file under the source root changes.
// Build failures are logged and watching continues. Watch returns when ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	ws, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Debounce <= 0 {
		opts.Debounce = watcher.DefaultDebounceWindow
	}

	a.rebuild(ctx, opts.BuildOptions)

	if err := a.watcher.Start(ctx, ws.Root, watchExcludes(ws)...); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(opts.Debounce, func(paths []string) {
		select {
		case trigger <- paths:
		default:
			// A rebuild is already pending and will see these changes.
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching for changes", "root", ws.Root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-trigger:
			a.logger.Info("change detected, rebuilding", "changes", len(paths))
			a.rebuild(ctx, opts.BuildOptions)
		}
	}
}

func (a *App) rebuild(ctx context.Context, opts BuildOptions) {
	if err := a.Build(ctx, nil, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// watchExcludes keeps build outputs from retriggering the build.
func watchExcludes(ws *domain.Workspace) []string {
	rel, err := filepath.Rel(ws.Root, ws.BuildRoot)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return nil
	}
	return []string{"/" + filepath.ToSlash(rel) + "/"}
}
