package quadtree

import "github.com/katalvlaran/quadgrid/geom"

// Node is one rectangular region of the indexed space. It directly holds the
// objects that fit its bounds but no single child's, and is either a leaf or
// subdivided into exactly four children covering its four equal quadrants.
//
// Nodes are owned by their Tree; callers receive them only through
// introspection (AllNodes, Child, Parent) and must treat any retained Node as
// stale after the next mutation of the Tree.
type Node[T Bounded] struct {
	id       int64
	bounds   geom.Rect
	parent   *Node[T]
	children [4]*Node[T] // indexed by Quadrant; all nil or all set
	objects  map[T]struct{}
}

// ID returns the node's diagnostic identifier, unique within its Tree.
func (n *Node[T]) ID() int64 { return n.id }

// Bounds returns the rectangular region this node covers.
func (n *Node[T]) Bounds() geom.Rect { return n.bounds }

// Parent returns the owning node, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// HasChildren reports whether the node is subdivided. Subdivision is
// all-or-nothing, so inspecting one fixed slot suffices.
// Complexity: O(1).
func (n *Node[T]) HasChildren() bool {
	return n.children[NorthWest] != nil
}

// Child returns the child occupying quadrant q, or nil if the node is a leaf.
// Complexity: O(1).
func (n *Node[T]) Child(q Quadrant) *Node[T] {
	return n.children[q]
}

// setChild installs c as the child for quadrant q, maintaining parent
// back-references: the new child's parent becomes n, and a displaced child's
// parent is cleared. Passing nil detaches the slot.
func (n *Node[T]) setChild(q Quadrant, c *Node[T]) {
	if old := n.children[q]; old != nil {
		old.parent = nil
	}
	n.children[q] = c
	if c != nil {
		c.parent = n
	}
}

// Len returns the number of objects held directly at this node, excluding
// descendants.
// Complexity: O(1).
func (n *Node[T]) Len() int {
	return len(n.objects)
}

// Objects returns a copy of the objects held directly at this node, in
// unspecified order.
// Complexity: O(direct objects).
func (n *Node[T]) Objects() []T {
	out := make([]T, 0, len(n.objects))
	for o := range n.objects {
		out = append(out, o)
	}

	return out
}

// subtreeLen counts the objects held by n and every descendant.
// Complexity: O(nodes in subtree).
func (n *Node[T]) subtreeLen() int {
	total := len(n.objects)
	if n.HasChildren() {
		for _, q := range quadrants {
			total += n.children[q].subtreeLen()
		}
	}

	return total
}

// quadrantRect returns the region of quadrant q within r: r split into four
// equal parts with no gaps or overlaps.
func quadrantRect(r geom.Rect, q Quadrant) geom.Rect {
	w2, h2 := r.W/2, r.H/2
	switch q {
	case NorthWest:
		return geom.Rect{X: r.X, Y: r.Y + h2, W: w2, H: h2}
	case NorthEast:
		return geom.Rect{X: r.X + w2, Y: r.Y + h2, W: w2, H: h2}
	case SouthWest:
		return geom.Rect{X: r.X, Y: r.Y, W: w2, H: h2}
	default: // SouthEast
		return geom.Rect{X: r.X + w2, Y: r.Y, W: w2, H: h2}
	}
}
