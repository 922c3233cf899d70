package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dverney/espalier/internal/presentation"
	fsadapter "github.com/dverney/espalier/pkg/adapters/fs"
	"github.com/dverney/espalier/pkg/adapters/outline"
	"github.com/dverney/espalier/pkg/domain"
	"github.com/dverney/espalier/pkg/ports"
)

// openSource builds the delegate and label function for path: a directory
// is served by the filesystem delegate, a .yaml/.yml file by the outline
// delegate.
func openSource(path string, hidden bool) (ports.TreeDelegate, presentation.Labeler, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open source: %w", err)
	}

	if info.IsDir() {
		opts := []fsadapter.Option{}
		if hidden {
			opts = append(opts, fsadapter.WithHidden())
		}
		label := func(n *domain.Node) string {
			// The root wraps the internal sentinel, not an Entry.
			if n.IsRoot() {
				return ""
			}
			return n.Object().(*fsadapter.Entry).Name
		}
		return fsadapter.New(path, opts...), label, nil
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		doc, err := outline.Load(path)
		if err != nil {
			return nil, nil, err
		}
		label := func(n *domain.Node) string {
			if n.IsRoot() {
				return ""
			}
			return n.Object().(*outline.Item).Text
		}
		return outline.NewDelegate(doc), label, nil
	}
	return nil, nil, fmt.Errorf("unsupported source %s: want a directory or a .yaml outline", path)
}
