// Package watch reports changes to a fixed set of files.
//
// The parent directory of each file is watched rather than the file itself,
// so editors that save by writing a new file and renaming it over the old
// one are still seen. Bursts of events are debounced into one callback.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thoreinstein/llcheck/internal/errors"
)

// DefaultInterval is the quiet period after the last event before the
// change callback runs.
const DefaultInterval = 150 * time.Millisecond

// Watcher watches files for changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]string // absolute path -> path as given
	interval time.Duration
	logger   *slog.Logger
}

// New starts watching paths. An interval of zero means DefaultInterval.
// The caller must call Run, which releases the watcher when it returns.
func New(paths []string, interval time.Duration, logger *slog.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to watch")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]string, len(paths)),
		interval: interval,
		logger:   logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "resolving %s", p)
		}
		w.files[abs] = p

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "watching %s", dir)
		}
		dirs[dir] = true
		logger.Debug("watching directory", "path", dir)
	}

	return w, nil
}

// Run blocks until ctx is done, calling onChange with the changed paths,
// as given to New and sorted, once events have been quiet for the
// interval. onChange runs on Run's goroutine, never concurrently.
func (w *Watcher) Run(ctx context.Context, onChange func(changed []string)) error {
	defer w.fsw.Close()

	pending := make(map[string]bool)
	timer := time.NewTimer(w.interval)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			path, watched := w.relevant(event)
			if !watched {
				continue
			}
			w.logger.Debug("file event", "path", path, "op", event.Op.String())
			pending[path] = true
			timer.Reset(w.interval)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			slices.Sort(changed)
			clear(pending)
			onChange(changed)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// relevant reports whether event concerns a watched file, and which one.
func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if event.Op == fsnotify.Chmod {
		return "", false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	p, ok := w.files[abs]
	return p, ok
}
