package domain

import (
	"fmt"
	"sync/atomic"
)

// nodeIDs is the process-wide node identifier source. It is never reset;
// identifiers are unique for the lifetime of the process.
var nodeIDs atomic.Uint64

// rootObject is the sentinel represented object used by root nodes created
// via NewRootNode. It is deliberately unexported: "no object" is an internal
// concept and must never collide with a caller's payload.
type rootObject struct{}

// Node is a cell in the tree. It wraps a represented object, owns its
// children, and knows its parent by a non-owning back-reference.
//
// Nodes are compared by instance identity: two *Node values are the same
// node iff they are the same pointer (equivalently, iff their IDs match).
// The represented object is likewise compared only with ==, so callers
// should use pointer payloads.
//
// Nodes are not safe for concurrent use. Construct, mutate, and query a
// tree from a single goroutine at a time.
type Node struct {
	id       uint64
	object   any
	parent   *Node
	children []*Node

	// CanHaveChildren reports whether reconciliation may populate children
	// for this node. A node constructed with children keeps them either way;
	// the rebuild pass simply never queries the delegate for a node where
	// this is false.
	CanHaveChildren bool

	// IsGroup marks the node as a non-selectable group header in the
	// displayed hierarchy.
	IsGroup bool
}

// NewNode creates a detached node wrapping object. parent may be nil.
// The node records parent but is not inserted into parent's child list;
// attaching is a separate, explicit step (SetChildren or AddChild on the
// parent, or the controller's rebuild).
func NewNode(object any, parent *Node) *Node {
	return &Node{
		id:     nodeIDs.Add(1),
		object: object,
		parent: parent,
	}
}

// NewRootNode creates a parentless node wrapping an internal sentinel
// object, with CanHaveChildren enabled.
func NewRootNode() *Node {
	n := NewNode(&rootObject{}, nil)
	n.CanHaveChildren = true
	return n
}

// ID returns the node's process-unique identifier. IDs are assigned once at
// construction and increase monotonically in construction order.
func (n *Node) ID() uint64 {
	return n.id
}

// Object returns the represented object this node wraps.
func (n *Node) Object() any {
	return n.object
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's child list. The returned slice is the node's
// own storage; callers must treat it as read-only and go through SetChildren
// or AddChild to mutate.
func (n *Node) Children() []*Node {
	return n.children
}

// SetChildren replaces the node's child list wholesale.
func (n *Node) SetChildren(children []*Node) {
	n.children = children
}

// AddChild appends child to the node's child list.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// NumberOfChildren returns the size of the child list.
func (n *Node) NumberOfChildren() int {
	return len(n.children)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Level returns the node's depth: 0 for a root, parent's level + 1 otherwise.
func (n *Node) Level() int {
	if n.parent == nil {
		return 0
	}
	return n.parent.Level() + 1
}

// ChildAt returns the child at index i, or nil if i is out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// IndexOfChild returns the position of child in the child list, comparing by
// node identity, or -1 if child is not an immediate child.
func (n *Node) IndexOfChild(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// IndexPath returns the sequence of child indices leading from the root to
// this node. The root's index path is empty.
//
// It panics if any node on the parent chain claims a parent that does not
// actually list it as a child. That means a caller mutated a child list
// without keeping parent links consistent, which breaks the ownership
// contract; it is a programming error, not a recoverable condition.
func (n *Node) IndexPath() []int {
	var reversed []int
	for node := n; node.parent != nil; node = node.parent {
		i := node.parent.IndexOfChild(node)
		if i < 0 {
			panic(fmt.Sprintf("espalier: node %d has parent %d but is not among its children", node.id, node.parent.id))
		}
		reversed = append(reversed, i)
	}
	path := make([]int, len(reversed))
	for i, idx := range reversed {
		path[len(reversed)-1-i] = idx
	}
	return path
}

// ExistingOrNewChildNode returns the immediate child representing object if
// one exists. Otherwise it constructs a new node with this node as parent
// and returns it without attaching it; the caller decides whether the new
// node joins the child list.
func (n *Node) ExistingOrNewChildNode(object any) *Node {
	if child := n.ChildRepresenting(object); child != nil {
		return child
	}
	return NewNode(object, n)
}

// ChildRepresenting returns the immediate child whose represented object is
// identical to object, or nil.
func (n *Node) ChildRepresenting(object any) *Node {
	for _, child := range n.children {
		if child.object == object {
			return child
		}
	}
	return nil
}

// DescendantRepresenting searches the subtree below this node, depth-first
// in child order, for the node representing object. The node itself is not
// a candidate. Returns nil when object is not represented anywhere below.
func (n *Node) DescendantRepresenting(object any) *Node {
	for _, child := range n.children {
		if child.object == object {
			return child
		}
		if found := child.DescendantRepresenting(object); found != nil {
			return found
		}
	}
	return nil
}

// DescendantWhere searches the subtree below this node, depth-first in child
// order, for the first node satisfying test. The node itself is not a
// candidate.
func (n *Node) DescendantWhere(test func(*Node) bool) *Node {
	for _, child := range n.children {
		if test(child) {
			return child
		}
		if found := child.DescendantWhere(test); found != nil {
			return found
		}
	}
	return nil
}

// IsAncestorOf reports whether this node appears on other's parent chain.
// A node is never its own ancestor.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// HasAncestorIn reports whether any of the candidate nodes is a strict
// ancestor of this node.
func (n *Node) HasAncestorIn(candidates []*Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		for _, c := range candidates {
			if c == p {
				return true
			}
		}
	}
	return false
}
