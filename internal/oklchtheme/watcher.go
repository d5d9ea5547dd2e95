package oklchtheme

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups rapid writes to the same file.
const DefaultDebounce = 200 * time.Millisecond

// Watcher re-runs the rewrite whenever a target file changes.
//
// Parent directories are watched rather than the files, so editors that
// save by rename keep triggering events. The rewrite only writes when the
// output differs, which lets the watcher's own writes settle after one pass.
type Watcher struct {
	engine   *Engine
	targets  map[string]string // absolute path -> path as given
	dryRun   bool
	debounce time.Duration
	logger   *slog.Logger
	onResult func(FileResult)

	timers map[string]*time.Timer
	mu     sync.Mutex
	wg     sync.WaitGroup
}

// WatchOptions configures a Watcher
type WatchOptions struct {
	Debounce time.Duration
	DryRun   bool
	OnResult func(FileResult) // called after every rewrite, may be nil
}

// NewWatcher creates a watcher over paths.
func NewWatcher(engine *Engine, paths []string, opts WatchOptions, logger *slog.Logger) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.OnResult == nil {
		opts.OnResult = func(FileResult) {}
	}

	targets := make(map[string]string, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = p
	}

	return &Watcher{
		engine:   engine,
		targets:  targets,
		dryRun:   opts.DryRun,
		debounce: opts.Debounce,
		logger:   logger,
		onResult: opts.OnResult,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Run rewrites every target once, then watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	dirs := make(map[string]bool)
	for abs := range w.targets {
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	for abs := range w.targets {
		w.rewrite(abs)
	}
	w.logger.Info("Watching files", "files", len(w.targets), "dirs", len(dirs))

	defer w.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("File watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	if _, ok := w.targets[abs]; !ok {
		return
	}

	w.logger.Debug("File event", "op", event.Op.String(), "file", event.Name)
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
		w.schedule(abs)
	}
}

// schedule debounces rewrites of abs; only the last event in a burst runs.
func (w *Watcher) schedule(abs string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[abs]; ok {
		if timer.Stop() {
			w.wg.Done()
		}
	}

	w.wg.Add(1)
	w.timers[abs] = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		w.mu.Lock()
		delete(w.timers, abs)
		w.mu.Unlock()
		w.rewrite(abs)
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	for abs, timer := range w.timers {
		if timer.Stop() {
			w.wg.Done()
		}
		delete(w.timers, abs)
	}
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *Watcher) rewrite(abs string) {
	fr := RewriteFile(w.engine, w.targets[abs], w.dryRun)
	if fr.Err != nil {
		w.logger.Warn("Rewrite failed", "file", fr.Path, "error", fr.Err)
	} else {
		w.logger.Debug("Rewrote file", "file", fr.Path, "changed", fr.Changed)
	}
	w.onResult(fr)
}
