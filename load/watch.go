package load

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/loomdb/loom/graph"
)

// Watcher rebuilds a graph from a schema file whenever the file changes
// on disk. Results, including build failures, are delivered to the
// callback in file order. Close the watcher or cancel the context passed
// to Run to stop watching.
type Watcher struct {
	path string
	opts []graph.Option
	fw   *fsnotify.Watcher
}

// NewWatcher returns a watcher for the schema file at path. The parent
// directory is watched so editors that replace the file atomically are
// still observed.
func NewWatcher(path string, opts ...graph.Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("loom: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("loom: watch %s: %w", path, err)
	}
	return &Watcher{path: path, opts: opts, fw: fw}, nil
}

// Run builds the graph once, delivers it, and then rebuilds on every
// write or create of the schema file until the context is canceled or the
// watcher is closed. Build failures are delivered through the callback's
// error argument and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, fn func(*graph.Graph, error)) error {
	fn(File(w.path, w.opts...))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.matches(event) {
				continue
			}
			fn(File(w.path, w.opts...))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("loom: watch %s: %w", w.path, err))
		}
	}
}

// Close stops the watcher. Run returns after Close.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)
}
