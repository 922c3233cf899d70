package domain

// NodeFinder locates the node representing an object somewhere in a tree.
// It is satisfied by espalier.TreeController.
type NodeFinder interface {
	// NodeRepresenting returns the node wrapping object, or nil if the
	// object is not represented in the tree.
	NodeRepresenting(object any) *Node
}

// NodePath is an immutable, root-first sequence of nodes ending at a target
// node. The zero value is an empty path.
type NodePath struct {
	components []*Node
}

// NodePathFromNode builds the path from the tree root down to node by
// walking node's parent chain.
func NodePathFromNode(node *Node) NodePath {
	var reversed []*Node
	for n := node; n != nil; n = n.parent {
		reversed = append(reversed, n)
	}
	components := make([]*Node, len(reversed))
	for i, n := range reversed {
		components[len(reversed)-1-i] = n
	}
	return NodePath{components: components}
}

// NodePathFromObject locates object via finder and builds the path to its
// node. The second return value is false when the object is not represented
// in the tree; that is an expected absence, not an error.
func NodePathFromObject(object any, finder NodeFinder) (NodePath, bool) {
	node := finder.NodeRepresenting(object)
	if node == nil {
		return NodePath{}, false
	}
	return NodePathFromNode(node), true
}

// Components returns the path's nodes, root first. Callers must treat the
// returned slice as read-only.
func (p NodePath) Components() []*Node {
	return p.components
}

// Len returns the number of nodes on the path.
func (p NodePath) Len() int {
	return len(p.components)
}

// Node returns the path's target (its last component), or nil for an empty
// path.
func (p NodePath) Node() *Node {
	if len(p.components) == 0 {
		return nil
	}
	return p.components[len(p.components)-1]
}
