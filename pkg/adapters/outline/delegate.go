package outline

import (
	"github.com/dverney/espalier/pkg/domain"
)

// Delegate serves the items of a Document as a tree. It implements
// ports.TreeDelegate.
type Delegate struct {
	doc *Document
}

// NewDelegate creates a delegate over doc. doc may be nil; the tree is then
// empty until SetDocument.
func NewDelegate(doc *Document) *Delegate {
	return &Delegate{doc: doc}
}

// Document returns the currently served document.
func (d *Delegate) Document() *Document {
	return d.doc
}

// SetDocument swaps the served document. The next rebuild reconciles the
// tree against it; items are fresh pointers, so every populated child list
// is replaced.
func (d *Delegate) SetDocument(doc *Document) {
	d.doc = doc
}

// ChildNodes implements ports.TreeDelegate.
func (d *Delegate) ChildNodes(node *domain.Node) []*domain.Node {
	if d.doc == nil {
		return nil
	}

	var items []*Item
	if node.IsRoot() {
		items = d.doc.Items
	} else {
		item, ok := node.Object().(*Item)
		if !ok {
			return nil
		}
		items = item.Items
	}
	if len(items) == 0 {
		return nil
	}

	nodes := make([]*domain.Node, 0, len(items))
	for _, item := range items {
		child := node.ExistingOrNewChildNode(item)
		if len(item.Items) > 0 {
			child.CanHaveChildren = true
		}
		child.IsGroup = item.Group
		nodes = append(nodes, child)
	}
	return nodes
}
