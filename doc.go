/*
Package espalier is an in-memory tree model for hierarchical UI presentations
(outlines, sidebars, source lists).

It wraps arbitrary domain objects in identity-bearing nodes, shapes them into
a hierarchy by reconciling against a host-supplied delegate, and answers the
search and path queries a disclosure/selection widget needs. The widget
itself, rendering, and persistence are the host's business; Espalier owns
only the data model.

# Concept

The host hands the TreeController a delegate that can answer one question:
"what are the children of this node, right now?". Rebuild walks the tree,
asks the delegate at every expandable node, and swaps in the delegate's
answer wherever it differs from the current child list. Node identity is
stable across rebuilds as long as the delegate reuses nodes for unchanged
entries, so selections and disclosure state held by the host survive
reconciliation.

# Usage

	root := domain.NewRootNode()
	controller := espalier.NewTreeController(delegate, espalier.WithRootNode(root))

	// The delegate's data changed; reconcile and see if anything moved.
	if controller.Rebuild() {
		controller.VisitNodes(func(n *domain.Node) {
			// refresh the row for n
		})
	}

	// Locate the node (and disclosure path) for a domain object.
	if path, ok := domain.NodePathFromObject(obj, controller); ok {
		expand(path.Components())
	}

All operations are synchronous and in-memory. The tree is single-owner:
construct, mutate, and query it from one goroutine at a time, and keep the
delegate from mutating the tree it is being queried about.
*/
package espalier
