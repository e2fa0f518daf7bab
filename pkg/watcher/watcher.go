package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
)

// DefaultDebounce collapses the burst of events an editor or exporter
// produces while rewriting a file
const DefaultDebounce = 300 * time.Millisecond

// FileWatcher reports changes of a single input file. It watches the parent
// directory so that files replaced by rename are still seen.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewFileWatcher creates a watcher for path
func NewFileWatcher(path string, debounce time.Duration) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &FileWatcher{
		watcher:  watcher,
		path:     absPath,
		debounce: debounce,
	}, nil
}

// Path returns the absolute path being watched
func (fw *FileWatcher) Path() string {
	return fw.path
}

// Start delivers debounced change notifications to onChange until ctx is
// done or the watcher is closed. onChange runs on a timer goroutine.
func (fw *FileWatcher) Start(ctx context.Context, onChange func()) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				fw.stopTimer()
				return

			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != fw.path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					glog.V(1).Infof("watcher: %s", event)
					fw.schedule(onChange)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				glog.Warningf("watcher error: %v", err)
			}
		}
	}()
}

// schedule restarts the debounce timer
func (fw *FileWatcher) schedule(onChange func()) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, onChange)
}

func (fw *FileWatcher) stopTimer() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
		fw.timer = nil
	}
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.stopTimer()
	return fw.watcher.Close()
}

// ReloadFlag is set from the watcher goroutine and consumed by the event
// loop between frames
type ReloadFlag struct {
	pending atomic.Bool
}

// Set marks a reload as pending
func (f *ReloadFlag) Set() {
	f.pending.Store(true)
}

// Take reports whether a reload was pending and clears the flag
func (f *ReloadFlag) Take() bool {
	return f.pending.Swap(false)
}
