// This file implements range queries and the introspection surface:
// object/node counts, full node traversal, and sort-order lookup.

package quadtree

import (
	"sort"

	"github.com/katalvlaran/quadgrid/geom"
)

// Query returns every indexed object whose bounds intersect region, each
// exactly once. Subtrees whose bounds do not intersect region are pruned
// wholesale, so work is proportional to the overlapped part of the tree.
//
// With WithSortedQueries the result is ordered ascending by insertion
// sequence; otherwise the order is unspecified.
// Complexity: O(overlapping nodes + k), plus O(k·log k) in sorted mode.
func (t *Tree[T]) Query(region geom.Rect) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []T
	if t.root != nil {
		out = t.collect(t.root, region, out)
	}
	if t.sortQueries {
		sortBySeq(out, t.seq)
	}

	return out
}

// collect appends every object in n's subtree intersecting region to out.
func (t *Tree[T]) collect(n *Node[T], region geom.Rect, out []T) []T {
	if !n.bounds.Intersects(region) {
		return out
	}
	for o := range n.objects {
		if o.Bounds().Intersects(region) {
			out = append(out, o)
		}
	}
	if n.HasChildren() {
		for _, q := range quadrants {
			out = t.collect(n.children[q], region, out)
		}
	}

	return out
}

// sortBySeq orders objs ascending by their insertion sequence numbers.
// Sequence numbers are unique, so ties cannot occur.
func sortBySeq[T Bounded](objs []T, seq map[T]int64) {
	sort.Slice(objs, func(i, j int) bool { return seq[objs[i]] < seq[objs[j]] })
}

// ObjectCount returns the number of currently indexed objects.
// Complexity: O(1).
func (t *Tree[T]) ObjectCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodeOf)
}

// NodeCount returns the number of nodes in the tree, zero when no object was
// ever inserted.
// Complexity: O(nodes).
func (t *Tree[T]) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return countNodes(t.root)
}

func countNodes[T Bounded](n *Node[T]) int {
	if n == nil {
		return 0
	}
	total := 1
	if n.HasChildren() {
		for _, q := range quadrants {
			total += countNodes(n.children[q])
		}
	}

	return total
}

// AllNodes returns every node of the tree in pre-order (root first,
// quadrants in NW, NE, SW, SE order). The slice is a diagnostic snapshot;
// retained nodes are stale after any subsequent mutation.
// Complexity: O(nodes).
func (t *Tree[T]) AllNodes() []*Node[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return appendNodes[T](nil, t.root)
}

func appendNodes[T Bounded](out []*Node[T], n *Node[T]) []*Node[T] {
	if n == nil {
		return out
	}
	out = append(out, n)
	if n.HasChildren() {
		for _, q := range quadrants {
			out = appendNodes(out, n.children[q])
		}
	}

	return out
}

// Root returns the current root node, or nil while the tree is empty.
// Diagnostic; the same staleness caveat as AllNodes applies.
func (t *Tree[T]) Root() *Node[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root
}

// SortOrderOf returns obj's insertion sequence number, or -1 when sorting is
// disabled or obj is not currently indexed.
// Complexity: O(1).
func (t *Tree[T]) SortOrderOf(obj T) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.sortQueries {
		return -1
	}
	s, ok := t.seq[obj]
	if !ok {
		return -1
	}

	return int(s)
}
