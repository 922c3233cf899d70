package espalier

import (
	"io"
	"log/slog"

	"github.com/dverney/espalier/pkg/domain"
	"github.com/dverney/espalier/pkg/ports"
)

// TreeController owns the shape of a tree: a fixed root node plus the logic
// that keeps every reachable child list reconciled with the delegate's
// authoritative answer. It does not own node payloads.
//
// A controller is never observed unreconciled: NewTreeController performs
// one Rebuild before returning.
type TreeController struct {
	delegate ports.TreeDelegate
	root     *domain.Node
	logger   *slog.Logger
}

// Option defines a functional option for configuring the TreeController.
type Option func(*TreeController)

// WithRootNode supplies the root node instead of the default fresh root.
func WithRootNode(root *domain.Node) Option {
	return func(c *TreeController) {
		c.root = root
	}
}

// WithLogger sets a structured logger for reconciliation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *TreeController) {
		c.logger = logger
	}
}

// NewTreeController creates a controller over delegate and immediately
// reconciles once, so the returned tree already matches the delegate.
func NewTreeController(delegate ports.TreeDelegate, opts ...Option) *TreeController {
	c := &TreeController{delegate: delegate}
	for _, opt := range opts {
		opt(c)
	}
	if c.root == nil {
		c.root = domain.NewRootNode()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.Rebuild()
	return c
}

// RootNode returns the controller's root. It is fixed for the controller's
// lifetime and never nil.
func (c *TreeController) RootNode() *domain.Node {
	return c.root
}

// Rebuild re-queries the delegate for every reachable node that can have
// children and replaces any child list that differs from the delegate's
// answer, comparing by ordered node identity. It reports whether any child
// list anywhere in the tree was replaced.
//
// Calling Rebuild twice in a row with an unchanged delegate answer returns
// false on the second call.
func (c *TreeController) Rebuild() bool {
	changed := c.rebuildChildNodes(c.root)
	c.logger.Debug("rebuild complete", "changed", changed)
	return changed
}

func (c *TreeController) rebuildChildNodes(node *domain.Node) bool {
	if !node.CanHaveChildren {
		return false
	}

	childNodes := c.delegate.ChildNodes(node)
	changed := !childNodesMatch(node.Children(), childNodes)
	if changed {
		node.SetChildren(childNodes)
	}
	for _, child := range node.Children() {
		if c.rebuildChildNodes(child) {
			changed = true
		}
	}
	return changed
}

// childNodesMatch reports ordered identity-sequence equality: same nodes,
// same order. Same set in a different order is a mismatch.
func childNodesMatch(current, proposed []*domain.Node) bool {
	if len(current) != len(proposed) {
		return false
	}
	for i, node := range current {
		if node != proposed[i] {
			return false
		}
	}
	return true
}

// VisitNodes walks the whole tree in pre-order (node before its children,
// children in order), invoking visit on every node including the root.
func (c *TreeController) VisitNodes(visit func(*domain.Node)) {
	c.visit(c.root, visit)
}

func (c *TreeController) visit(node *domain.Node, visit func(*domain.Node)) {
	visit(node)
	for _, child := range node.Children() {
		c.visit(child, visit)
	}
}

// NodeInSliceRepresenting scans nodes in order for the node whose
// represented object is identical to object. When recurse is set, each
// scanned node that can have children has its subtree searched (pre-order)
// before the scan moves to the next sibling. Returns nil when the object is
// not found; that is an expected absence, not an error.
func (c *TreeController) NodeInSliceRepresenting(nodes []*domain.Node, object any, recurse bool) *domain.Node {
	for _, node := range nodes {
		if node.Object() == object {
			return node
		}
		if recurse && node.CanHaveChildren {
			if found := c.NodeInSliceRepresenting(node.Children(), object, true); found != nil {
				return found
			}
		}
	}
	return nil
}

// NodeRepresenting searches the entire tree, root included, for the node
// wrapping object. It satisfies domain.NodeFinder, so it also backs
// domain.NodePathFromObject.
func (c *TreeController) NodeRepresenting(object any) *domain.Node {
	return c.NodeInSliceRepresenting([]*domain.Node{c.root}, object, true)
}

// NormalizedSelectedNodes returns the subsequence of nodes, in the original
// order, that have no strict ancestor also present in nodes. When a folder
// and one of its descendants are both selected, only the folder survives.
func (c *TreeController) NormalizedSelectedNodes(nodes []*domain.Node) []*domain.Node {
	normalized := make([]*domain.Node, 0, len(nodes))
	for _, node := range nodes {
		if !node.HasAncestorIn(nodes) {
			normalized = append(normalized, node)
		}
	}
	return normalized
}
