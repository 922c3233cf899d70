// Package memory provides a ports.TreeDelegate backed by an in-memory table
// of represented objects. It is the reference delegate for tests, examples,
// and hosts whose hierarchy already lives in process memory.
package memory

import (
	"github.com/dverney/espalier/pkg/domain"
)

// Delegate serves child lists from a parent-object -> child-objects table.
//
// Node identity is stable across rebuilds: for each child object the
// delegate reuses the node already present under the parent when there is
// one (via Node.ExistingOrNewChildNode) and only constructs nodes for
// objects that are new. Objects must be comparable with ==; use pointers.
//
// The zero value is not usable; call New.
type Delegate struct {
	rootObjects []any
	children    map[any][]any
	groups      map[any]bool
}

// New creates an empty Delegate. A controller reconciled against it has a
// bare root until SetRootObjects/SetChildObjects populate the table.
func New() *Delegate {
	return &Delegate{
		children: make(map[any][]any),
		groups:   make(map[any]bool),
	}
}

// SetRootObjects replaces the objects presented as children of the tree
// root, in order.
func (d *Delegate) SetRootObjects(objects ...any) {
	d.rootObjects = objects
}

// SetChildObjects replaces the child objects of parent, in order. Declaring
// a parent, even with no children, marks its node as able to have children
// on the next rebuild.
func (d *Delegate) SetChildObjects(parent any, children ...any) {
	d.children[parent] = children
}

// SetGroup marks object's node as a non-selectable group header.
func (d *Delegate) SetGroup(object any) {
	d.groups[object] = true
}

// ChildNodes implements ports.TreeDelegate.
func (d *Delegate) ChildNodes(node *domain.Node) []*domain.Node {
	var objects []any
	if node.IsRoot() {
		objects = d.rootObjects
	} else {
		objects = d.children[node.Object()]
	}
	if len(objects) == 0 {
		return nil
	}

	nodes := make([]*domain.Node, 0, len(objects))
	for _, object := range objects {
		child := node.ExistingOrNewChildNode(object)
		if _, ok := d.children[object]; ok {
			child.CanHaveChildren = true
		}
		if d.groups[object] {
			child.IsGroup = true
		}
		nodes = append(nodes, child)
	}
	return nodes
}
