// Package watch wraps fsnotify into a debounced change feed over the JSX
// files of a directory tree, for check --watch.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event reports that watched JSX files changed. Paths is deduplicated and
// sorted; a rename or delete still lists the old path so the caller can
// re-run the whole directory.
type Event struct {
	Paths []string
	Time  time.Time
}

// Options configures a watcher.
type Options struct {
	// Debounce collapses bursts of filesystem events into one Event.
	// Zero means 250ms.
	Debounce time.Duration
	// Exclude lists directory basenames never watched.
	Exclude []string
}

func (o Options) debounce() time.Duration {
	if o.Debounce <= 0 {
		return 250 * time.Millisecond
	}
	return o.Debounce
}

// Watcher follows a directory tree for JSX changes.
type Watcher struct {
	w       *fsnotify.Watcher
	opts    Options
	events  chan Event
	errors  chan error
	root    string
	stop    context.CancelFunc
	stopped chan struct{}
}

// New starts watching every directory under root, recursively. New
// subdirectories are picked up as they appear.
func New(root string, opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		w:       fsw,
		opts:    opts,
		events:  make(chan Event, 16),
		errors:  make(chan error, 1),
		root:    root,
		stopped: make(chan struct{}),
	}

	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.stop = cancel
	go w.loop(ctx)
	return w, nil
}

// Events delivers debounced change batches.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors delivers watcher failures.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher and its goroutine.
func (w *Watcher) Close() error {
	w.stop()
	err := w.w.Close()
	<-w.stopped
	return err
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && slices.Contains(w.opts.Exclude, d.Name()) {
			return filepath.SkipDir
		}
		return w.w.Add(path)
	})
}

func isJSXPath(path string) bool {
	return strings.HasSuffix(path, ".jsx") || strings.HasSuffix(path, ".js")
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.stopped)

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	flush := func() {
		if len(pending) == 0 {
			return
		}
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		slices.Sort(paths)
		pending = make(map[string]struct{})
		select {
		case w.events <- Event{Paths: paths, Time: time.Now()}:
		case <-ctx.Done():
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.w.Events:
			if !ok {
				flush()
				return
			}
			if ev.Op&fsnotify.Create != 0 {
				// a created directory must join the watch set; for
				// plain files addTree is a no-op
				_ = w.addTree(ev.Name)
			}
			if !isJSXPath(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending[ev.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.opts.debounce())
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.opts.debounce())
			}
			fire = timer.C

		case <-fire:
			fire = nil
			flush()

		case err, ok := <-w.w.Errors:
			if !ok {
				flush()
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
