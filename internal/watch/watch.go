// Package watch re-runs an export whenever the input file changes.
//
// The watcher follows the input through editor-style replacement (remove
// or rename followed by recreate): it waits for the path to reappear and
// re-arms, much like following a rotated log.
package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mholden/chatex/internal/config"
	"github.com/mholden/chatex/internal/export"
)

// Options configures the watcher behavior.
type Options struct {
	Config config.Config
	Out    io.Writer // per-export summary lines
	Errs   io.Writer // export failures while watching

	// Debounce is how long to wait after a write burst before exporting.
	Debounce time.Duration
	// ReappearTimeout bounds the wait for a removed input to come back.
	ReappearTimeout time.Duration
}

// Watcher re-exports a conversation as its input file changes.
type Watcher struct {
	opts    Options
	watcher *fsnotify.Watcher
}

// New creates a Watcher with the given options.
func New(opts Options) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = 100 * time.Millisecond
	}
	if opts.ReappearTimeout <= 0 {
		opts.ReappearTimeout = 10 * time.Second
	}
	return &Watcher{opts: opts}
}

// Run performs an initial export, then blocks re-exporting on every
// change until ctx is cancelled or the input disappears for good.
func (w *Watcher) Run(ctx context.Context) error {
	if err := export.Run(w.opts.Config, w.opts.Out); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}
	w.watcher = watcher
	defer w.watcher.Close()

	if err := w.watcher.Add(w.opts.Config.InputPath); err != nil {
		return fmt.Errorf("failed to watch %q: %w", w.opts.Config.InputPath, err)
	}

	return w.watch(ctx)
}

// watch monitors the input file and schedules exports.
func (w *Watcher) watch(ctx context.Context) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-pending:
			pending = nil
			// A half-written file must not kill the loop; report and
			// keep watching.
			if err := export.Run(w.opts.Config, w.opts.Out); err != nil {
				fmt.Fprintln(w.opts.Errs, "export failed:", err)
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				pending = time.After(w.opts.Debounce)
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				if err := w.rearm(ctx); err != nil {
					return err
				}
				pending = time.After(w.opts.Debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// rearm waits for a removed or renamed input file to reappear and adds
// it back to the watcher.
func (w *Watcher) rearm(ctx context.Context) error {
	path := w.opts.Config.InputPath
	timeout := time.After(w.opts.ReappearTimeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timeout:
			return fmt.Errorf("timeout waiting for %q to reappear", path)
		case <-ticker.C:
			if err := w.watcher.Add(path); err == nil {
				return nil
			}
		}
	}
}
