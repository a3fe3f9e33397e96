package watcher

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HotFileWatcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// DefaultDebounceWindow is the default time window for debouncing hot file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher watches a single hot file by watching its parent directory.
// The hot file may be created and removed any number of times.
type Watcher struct {
	logger ports.Logger
	window time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	hotFile   string
	events    chan ports.WatchEvent
	closed    bool
}

// NewWatcher creates a hot file watcher that coalesces events within window.
func NewWatcher(logger ports.Logger, window time.Duration) *Watcher {
	return &Watcher{logger: logger, window: window}
}

// Start begins watching hotFile. Its directory must exist.
func (w *Watcher) Start(ctx context.Context, hotFile string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.With(zerr.Wrap(domain.ErrWatcherFailed, "watcher already started"), "hot_file", w.hotFile)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "hot_file", hotFile)
	}

	hotFile = filepath.Clean(hotFile)
	dir := filepath.Dir(hotFile)
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "hot_file", hotFile), "directory", dir)
	}

	w.fsWatcher = fsWatcher
	w.hotFile = hotFile
	w.events = make(chan ports.WatchEvent, eventChannelBuffer)
	w.debouncer = NewDebouncer(w.window, w.emit)

	go w.processEvents(ctx, fsWatcher)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	fsWatcher := w.fsWatcher
	w.mu.Unlock()

	if fsWatcher == nil {
		return nil
	}
	return fsWatcher.Close()
}

// Events returns an iterator of hot file events.
// The iterator ends when the watcher stops or its context is done.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	w.mu.Lock()
	events := w.events
	w.mu.Unlock()

	return func(yield func(ports.WatchEvent) bool) {
		if events == nil {
			return
		}
		for event := range events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			_ = fsWatcher.Close()
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.hotFile {
				continue
			}
			if watchEvent, ok := convertEvent(event); ok {
				w.debouncer.Add(watchEvent)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// shutdown delivers pending events and closes the event stream.
func (w *Watcher) shutdown() {
	w.debouncer.Flush()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	close(w.events)
}

func (w *Watcher) emit(events []ports.WatchEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	for _, event := range events {
		select {
		case w.events <- event:
		default:
			w.logger.Warn("watcher: dropping hot file event, consumer is too slow")
		}
	}
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
