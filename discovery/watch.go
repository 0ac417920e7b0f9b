package discovery

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher purges a ManifestDiscoverer cache when its manifest file changes.
type Watcher struct {
	discoverer *ManifestDiscoverer
	fs         *fsnotify.Watcher
	debounce   time.Duration
	onChange   func()

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.Mutex
	timer     *time.Timer
	closeOnce sync.Once
	closeErr  error
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce collapses changes arriving within d into one purge. Defaults to 100ms.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnChange registers fn to run after each purge.
func WithOnChange(fn func()) WatchOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// Watch starts watching the manifest. The directory is watched rather than the
// file so that editors replacing the file by rename are noticed. The watcher
// stops and releases its fsnotify watcher when ctx is done or Close is called.
func (d *ManifestDiscoverer) Watch(ctx context.Context, opts ...WatchOption) (*Watcher, error) {
	if d.path == "" {
		return nil, ErrNoManifest
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("discovery: failed to create watcher: %w", err)
	}
	dir := filepath.Dir(d.path)
	if err := fsw.Add(dir); err != nil {
		return nil, errors.Join(
			fmt.Errorf("discovery: failed to watch directory %s: %w", dir, err),
			fsw.Close(),
		)
	}

	w := &Watcher{
		discoverer: d,
		fs:         fsw,
		debounce:   defaultDebounce,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.ctx, w.cancel = context.WithCancel(ctx)

	go w.run()
	return w, nil
}

// Close stops the watcher and waits for it to exit. It is safe to call more
// than once, and after ctx is done.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.cancel()
		<-w.done
	})
	return w.closeErr
}

// Done is closed once the watcher has stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) run() {
	defer close(w.done)
	defer w.release()
	name := filepath.Base(w.discoverer.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event, name)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.discoverer.log.Warn("manifest watch error", err, map[string]interface{}{
				"path": w.discoverer.path,
			})
		}
	}
}

// release stops a pending purge and closes the fsnotify watcher.
func (w *Watcher) release() {
	w.cancel()
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	w.closeErr = w.fs.Close()
}

func (w *Watcher) handleEvent(event fsnotify.Event, name string) {
	if filepath.Base(event.Name) != name {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if w.ctx.Err() != nil {
			return
		}
		w.discoverer.Purge()
		w.discoverer.log.Debug("provider manifest changed, cache purged", nil, map[string]interface{}{
			"path": w.discoverer.path,
		})
		if w.onChange != nil {
			w.onChange()
		}
	})
}
