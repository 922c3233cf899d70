package ports

import (
	"context"

	"github.com/dverney/espalier/pkg/domain"
)

// TreeDelegate supplies the authoritative child list for a node on demand.
//
// ChildNodes must be a synchronous, side-effect-free function of the node's
// represented object at call time; it may answer differently across calls as
// the underlying data changes, which is exactly what TreeController.Rebuild
// detects. Returning nil or an empty slice both mean "no children".
//
// Delegates must hand back stable node identities for unchanged entries
// (Node.ExistingOrNewChildNode exists for this), and must never return the
// same node instance under two different parents. They must not mutate the
// controller's tree while being queried.
//
// Ownership of the returned slice transfers to the caller: when the child
// list changed, the controller adopts it as the node's backing storage.
// Delegates must return a fresh slice on every call and never retain or
// mutate one they have handed out.
type TreeDelegate interface {
	ChildNodes(node *domain.Node) []*domain.Node
}

// Watchable is implemented by delegates that can notify about backend
// changes. This is typically used to drive automatic rebuilds in a host.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying data
	// changes. It abstracts away the specific event details, signaling only
	// that a rebuild is warranted.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
