// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package live

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long a path must stay quiet before its change is
// reported.
const DebounceDelay = 100 * time.Millisecond

// ErrWatcherStopped is returned by Start after Stop.
var ErrWatcherStopped = errors.New("watcher cannot be restarted after stop")

// Op is the kind of change.
type Op string

const (
	OpCreated  Op = "created"
	OpModified Op = "modified"
	OpDeleted  Op = "deleted"
)

// Change is a debounced file system change. Path is slash separated and
// relative to the project root.
type Change struct {
	Op   Op
	Path string
}

// Subscriber receives changes. OnChange is called from a timer goroutine
// and must not block.
type Subscriber interface {
	OnChange(change Change)
}

// Watcher watches the source and public directories recursively plus the
// project's index.html.
type Watcher struct {
	watcher *fsnotify.Watcher
	root    string
	dirs    []string

	mu          sync.RWMutex
	subscribers []Subscriber
	running     bool
	stopped     bool

	debounceMu sync.Mutex
	debounce   map[string]*time.Timer

	stopCh chan struct{}
	logger *logger.Logger
}

// NewWatcher creates a watcher for root. dirs are relative to root.
func NewWatcher(root string, dirs []string, logger *logger.Logger) (*Watcher, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs := make([]string, 0, len(dirs))
	for _, d := range dirs {
		abs = append(abs, filepath.Join(root, d))
	}

	return &Watcher{
		watcher:  fw,
		root:     root,
		dirs:     abs,
		debounce: make(map[string]*time.Timer),
		stopCh:   make(chan struct{}),
		logger:   logger,
	}, nil
}

func (w *Watcher) Subscribe(sub Subscriber) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, sub)
}

// Start adds the watches and begins delivering changes. Calling Start on a
// running watcher is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if w.stopped {
		w.mu.Unlock()
		return ErrWatcherStopped
	}
	w.running = true
	w.mu.Unlock()

	// The root itself is watched non-recursively for index.html.
	if err := w.watcher.Add(w.root); err != nil {
		return err
	}
	for _, dir := range w.dirs {
		w.addRecursive(dir)
	}

	go w.run()
	return nil
}

// Stop releases the watches and cancels pending notifications.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running || w.stopped {
		w.stopped = true
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.stopped = true
	w.mu.Unlock()

	w.debounceMu.Lock()
	for path, timer := range w.debounce {
		timer.Stop()
		delete(w.debounce, path)
	}
	w.debounceMu.Unlock()

	close(w.stopCh)
	return w.watcher.Close()
}

func (w *Watcher) addRecursive(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The directory may not exist yet.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && ignored(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn().Err(err).Str("path", path).Msg("failed to watch directory")
		}
		return nil
	})
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("file watcher error")

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if ignored(filepath.Base(event.Name)) {
		return
	}

	change, ok := w.classify(event)
	if !ok {
		return
	}

	if change.Op == OpCreated {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addRecursive(event.Name)
		}
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if timer, exists := w.debounce[event.Name]; exists {
		timer.Stop()
	}
	w.debounce[event.Name] = time.AfterFunc(DebounceDelay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, event.Name)
		w.debounceMu.Unlock()
		w.emit(change)
	})
}

func (w *Watcher) emit(change Change) {
	w.mu.RLock()
	if w.stopped {
		w.mu.RUnlock()
		return
	}
	subs := make([]Subscriber, len(w.subscribers))
	copy(subs, w.subscribers)
	w.mu.RUnlock()

	w.logger.Debug().Str("op", string(change.Op)).Str("path", change.Path).Msg("source changed")
	for _, sub := range subs {
		sub.OnChange(change)
	}
}

// classify maps an event to a Change. Events outside the watched
// directories, apart from index.html, and chmod-only events are dropped.
func (w *Watcher) classify(event fsnotify.Event) (Change, bool) {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Change{}, false
	}
	rel = filepath.ToSlash(rel)

	if !w.inScope(event.Name, rel) {
		return Change{}, false
	}

	var op Op
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreated
	case event.Has(fsnotify.Write):
		op = OpModified
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		op = OpDeleted
	default:
		return Change{}, false
	}

	return Change{Op: op, Path: rel}, true
}

func (w *Watcher) inScope(name, rel string) bool {
	if rel == "index.html" {
		return true
	}
	for _, dir := range w.dirs {
		if name == dir || strings.HasPrefix(name, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// ignored reports hidden files and editor backups.
func ignored(base string) bool {
	return strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~")
}
