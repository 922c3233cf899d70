/*
Package domain contains the core tree model for Espalier.

It defines Node, the identity-bearing tree cell that wraps an arbitrary
represented object, and NodePath, the root-first sequence of nodes leading to
a target. This package is kept pure and free of external dependencies like
I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Node: An ordered tree cell owning its children and holding a non-owning
    back-reference to its parent.
  - NodePath: An immutable root-first node sequence, built from a node or by
    locating a represented object in a tree.

Represented objects are opaque to this package and compared only by identity
(the == operator), never by structural equality. In practice that means
callers hand nodes pointers to their domain values.
*/
package domain
