// Package presentation renders a reconciled tree as text for terminals.
package presentation

import (
	"fmt"
	"strings"

	"github.com/dverney/espalier/pkg/domain"
	"github.com/muesli/termenv"
)

// Labeler maps a node to its display label. The default prints the
// represented object with %v.
type Labeler func(*domain.Node) string

// Renderer writes a tree as indented box-drawing lines, one node per line.
type Renderer struct {
	// Label resolves the text for each node. Optional.
	Label Labeler
	// Profile controls styling. termenv.Ascii renders plain text; richer
	// profiles get group headers in bold and expandable nodes in color.
	Profile termenv.Profile
}

// Render returns the rendering of root's subtree. The root itself is
// omitted when it wraps the internal sentinel (it has nothing to display);
// its children start at column zero.
func (r *Renderer) Render(root *domain.Node) string {
	var sb strings.Builder
	if !root.IsRoot() {
		sb.WriteString(r.line(root))
		sb.WriteString("\n")
	}
	r.renderChildren(&sb, root, "")
	return sb.String()
}

func (r *Renderer) renderChildren(sb *strings.Builder, node *domain.Node, prefix string) {
	children := node.Children()
	for i, child := range children {
		connector, continuation := "├── ", "│   "
		if i == len(children)-1 {
			connector, continuation = "└── ", "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(r.line(child))
		sb.WriteString("\n")
		r.renderChildren(sb, child, prefix+continuation)
	}
}

func (r *Renderer) line(node *domain.Node) string {
	label := r.label(node)
	s := r.Profile.String(label)
	switch {
	case node.IsGroup:
		s = s.Bold().Foreground(r.Profile.Color("8"))
	case node.CanHaveChildren:
		s = s.Foreground(r.Profile.Color("6"))
	default:
		return label
	}
	return s.String()
}

func (r *Renderer) label(node *domain.Node) string {
	if r.Label != nil {
		return r.Label(node)
	}
	return fmt.Sprintf("%v", node.Object())
}
