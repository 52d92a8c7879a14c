// Package watcher provides file watching for mask definition live
// reload.
//
// The watcher monitors configuration files for changes and triggers a
// handler when modifications settle. Events are debounced so editors
// that write in bursts (create + truncate + write, or atomic rename)
// produce a single reload.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Errors returned by watcher operations.
var (
	// ErrWatcherClosed indicates use after Close.
	ErrWatcherClosed = errors.New("watcher closed")

	// ErrAlreadyWatching indicates the path is already watched.
	ErrAlreadyWatching = errors.New("already watching path")
)

// Event represents a settled file change.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Time is when the change settled.
	Time time.Time
}

// Handler is called when a watched file changes.
type Handler func(Event)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle window for rapid change bursts.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler installs a callback for errors reported by the
// underlying notifier. Without one, errors are dropped.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher monitors individual files for changes using fsnotify.
// The parent directory is watched rather than the file itself so
// atomic rename-replace saves are still observed.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	handler  Handler
	onError  func(error)
	debounce time.Duration

	// Watched files (absolute paths) and their pending settle timers.
	targets map[string]bool
	timers  map[string]*time.Timer

	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// New creates a watcher and starts its event loop.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		handler:  handler,
		debounce: 250 * time.Millisecond,
		targets:  make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Watch adds a file to the watch list.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.targets[absPath] {
		return ErrAlreadyWatching
	}

	// Watch the containing directory; the file itself may not exist
	// yet, and editors often replace it wholesale.
	if err := w.fsw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}
	w.targets[absPath] = true
	return nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, timer := range w.timers {
		timer.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.dispatch(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			onError := w.onError
			w.mu.Unlock()
			if onError != nil {
				onError(err)
			}
		}
	}
}

// dispatch schedules the settle timer for events touching a target.
func (w *Watcher) dispatch(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
		return
	}
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.targets[path] {
		return
	}
	if timer, ok := w.timers[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.settle(path)
	})
}

func (w *Watcher) settle(path string) {
	w.mu.Lock()
	delete(w.timers, path)
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}
	w.handler(Event{Path: path, Time: time.Now()})
}
