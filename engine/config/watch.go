package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/XJINE/scenecam/engine/camera"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single config file.
// The parent directory is watched rather than the file, so editors that save by writing a
// temporary file and renaming it over the original are still seen. Bursts of events are
// coalesced: a path is sent on Events once the file has been quiet for the debounce window.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration

	Events chan string
	Errors chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatcherOption is a functional option for configuring a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the file must stay quiet before a change is reported.
//
// Parameters:
//   - d: the quiet window
//
// Returns:
//   - WatcherOption: functional option to set the debounce window
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher starts watching path.
//
// Parameters:
//   - path: the config file to watch
//   - options: functional options to configure the watcher
//
// Returns:
//   - *Watcher: the running watcher
//   - error: path resolution or fsnotify setup failure
func NewWatcher(path string, options ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: 100 * time.Millisecond,
		Events:   make(chan string, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, option := range options {
		option(w)
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes Events and Errors. It is safe to call more than once.
//
// Returns:
//   - error: the error from closing the underlying fsnotify watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case w.Events <- w.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Watch reloads path whenever it changes and passes the result, overlaid on base, to apply.
// A file that fails to load or apply is logged and skipped; the previous configuration stays
// in effect. Watch blocks until ctx is done.
//
// Parameters:
//   - ctx: cancels the watch
//   - path: the config file
//   - base: the configuration each reload is overlaid on
//   - apply: receives every successfully reloaded configuration
//
// Returns:
//   - error: watcher setup failure, or nil once ctx is done
func Watch(ctx context.Context, path string, base camera.Config, apply func(camera.Config), options ...WatcherOption) error {
	w, err := NewWatcher(path, options...)
	if err != nil {
		return err
	}
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := reload(changed, base)
			if err != nil {
				log.Printf("[Config] reload skipped: %v", err)
				continue
			}
			apply(cfg)
			log.Printf("[Config] reloaded %s", changed)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("[Config] watch error: %v", err)
		}
	}
}

func reload(path string, base camera.Config) (camera.Config, error) {
	f, err := Load(path)
	if err != nil {
		return base, err
	}
	return f.Apply(base)
}
