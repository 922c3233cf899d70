// Package fs provides a ports.TreeDelegate over a directory hierarchy.
// Directories become expandable nodes, files become leaves, and entries
// keep their node identity across rebuilds so a host's selection survives
// a re-scan.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dverney/espalier/internal/logging"
	"github.com/dverney/espalier/pkg/domain"
	"github.com/fsnotify/fsnotify"
)

// Entry is the represented object for one filesystem entry. Entries are
// canonical per path: the delegate hands out the same *Entry for a path for
// as long as its kind does not change, which is what keeps node identity
// stable.
type Entry struct {
	Path string
	Name string
	Dir  bool
}

// Delegate lists directory contents on demand. It implements
// ports.TreeDelegate and ports.Watchable.
type Delegate struct {
	root       string
	logger     *slog.Logger
	showHidden bool

	// entries caches the canonical Entry per absolute path. Stale paths
	// linger until the delegate is dropped; the cache is bounded by the
	// set of paths ever listed.
	entries map[string]*Entry
}

// Option defines a functional option for configuring the Delegate.
type Option func(*Delegate)

// WithLogger sets a structured logger for scan diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Delegate) {
		d.logger = logger
	}
}

// WithHidden includes dotfiles, which are skipped by default.
func WithHidden() Option {
	return func(d *Delegate) {
		d.showHidden = true
	}
}

// New creates a Delegate rooted at dir.
func New(dir string, opts ...Option) *Delegate {
	d := &Delegate{
		root:    filepath.Clean(dir),
		entries: make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.NewNop()
	}
	return d
}

// Root returns the directory the delegate serves.
func (d *Delegate) Root() string {
	return d.root
}

// ChildNodes implements ports.TreeDelegate. The tree root maps to the
// delegate's root directory. An unreadable directory answers "no children";
// the failure is logged, not surfaced, matching the expected-absence
// contract of tree queries.
func (d *Delegate) ChildNodes(node *domain.Node) []*domain.Node {
	dir := d.root
	if !node.IsRoot() {
		entry, ok := node.Object().(*Entry)
		if !ok || !entry.Dir {
			return nil
		}
		dir = entry.Path
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		d.logger.Warn("directory scan failed", "error", err, "dir", dir)
		return nil
	}

	var nodes []*domain.Node
	for _, de := range dirents {
		if !d.showHidden && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		entry := d.entries[path]
		if entry == nil || entry.Dir != de.IsDir() {
			entry = &Entry{Path: path, Name: de.Name(), Dir: de.IsDir()}
			d.entries[path] = entry
		}
		child := node.ExistingOrNewChildNode(entry)
		if entry.Dir {
			child.CanHaveChildren = true
		}
		nodes = append(nodes, child)
	}
	return nodes
}

// Watch implements ports.Watchable. It signals whenever anything under the
// root, or under a directory the delegate has already listed, changes.
// Newly created directories are added to the watch as they appear. Signals
// are coalesced; the channel closes when ctx is done.
func (d *Delegate) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(d.root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", d.root, err)
	}
	for path, entry := range d.entries {
		if entry.Dir {
			// Best effort: a vanished directory is reported on rebuild anyway.
			_ = watcher.Add(path)
		}
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						_ = watcher.Add(ev.Name)
					}
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				d.logger.Warn("watch error", "error", err)
			}
		}
	}()
	return ch, nil
}
