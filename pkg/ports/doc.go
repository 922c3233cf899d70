/*
Package ports defines the driven ports (interfaces) for the Espalier tree
controller.

These interfaces decouple the tree model from the host application that
supplies its content, allowing the controller to reconcile against any
backing source: an in-memory table, a filesystem, a parsed outline document.

# Key Interfaces

  - TreeDelegate: Supplies the authoritative child-node list for a node.
  - Watchable: Optional capability for delegates that can signal when the
    underlying data changed and a rebuild is warranted.
*/
package ports
