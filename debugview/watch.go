package debugview

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/katalvlaran/tacgrid/logging"
)

// DefaultDebounce drops change events that follow the previous one this closely.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher reports changes to one file. It watches the file's directory so
// that editors which replace the file on save are still seen.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// NewFileWatcher starts watching path. Events are delivered by Run.
func NewFileWatcher(path string, debounce time.Duration, log *slog.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &FileWatcher{watcher: w, path: abs, debounce: debounce, log: log}, nil
}

// Run calls onChange for every debounced write, create or rename of the file
// until ctx is done, then closes the watcher.
func (w *FileWatcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < w.debounce {
				continue
			}
			last = now
			w.log.Debug("level file changed", "path", w.path, "op", ev.Op.String())
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "path", w.path, "err", err)
		}
	}
}
