package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/swatch/internal/logger"
)

// DefaultWatchDebounce coalesces the burst of events an atomic write produces.
const DefaultWatchDebounce = 100 * time.Millisecond

// Watcher reports changes to a store's backing file. The parent directory
// is watched so atomic renames and SQLite journal files are seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	base     string
	debounce time.Duration
	log      *logger.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher starts watching path. The watch is active when NewWatcher
// returns.
func NewWatcher(path string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("store has no backing file to watch")
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		watcher:  fw,
		base:     filepath.Base(path),
		debounce: debounce,
		log:      log,
	}, nil
}

// Run invokes onChange after each settled burst of writes until ctx is done.
// onChange runs on a timer goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.schedule(onChange)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "state watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasSuffix(name, ".tmp") {
		return false
	}
	// state.db, state.db-wal and state.db-shm all belong to the store
	return strings.HasPrefix(name, w.base)
}

func (w *Watcher) schedule(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, onChange)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	_ = w.watcher.Close()
}
