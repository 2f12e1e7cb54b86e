// This file declares Tree, the New constructor, and the insertion path:
// lazy root creation, root growth toward out-of-bounds objects, and
// recursive placement with lazy subdivision.

package quadtree

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/quadgrid/geom"
)

// Tree is a dynamic region quadtree over objects of type T.
//
// The tree starts empty; the root materializes around the first inserted
// object and is replaced by a doubled root whenever a later object falls
// outside it, so callers never configure a world rectangle up front.
//
// mu guards the whole structure: Insert and Remove take the write lock,
// Query and introspection take the read lock, each for the operation's full
// duration including all recursion. nextNodeID is a per-tree diagnostic
// counter feeding Node.ID.
type Tree[T Bounded] struct {
	mu sync.RWMutex

	// Configuration, fixed at construction.
	minLeaf     geom.Size // smallest quadrant the tree will create
	maxPerLeaf  int       // direct-object count that triggers subdivision
	sortQueries bool      // Query returns insertion order when true

	// Storage.
	root   *Node[T]
	nodeOf map[T]*Node[T] // object → node holding it directly

	// Insertion-order bookkeeping, populated only in sorted mode.
	seq     map[T]int64
	nextSeq int64

	nextNodeID int64
}

// New creates an empty Tree. minLeaf bounds how small a quadrant subdivision
// may produce; maxPerLeaf is the direct-object count above which a leaf
// splits. Returns ErrLeafSize if minLeaf has a non-positive extent, or
// ErrCapacity if maxPerLeaf < 1.
// Complexity: O(1).
func New[T Bounded](minLeaf geom.Size, maxPerLeaf int, opts ...Option) (*Tree[T], error) {
	if !minLeaf.IsPositive() {
		return nil, ErrLeafSize
	}
	if maxPerLeaf < 1 {
		return nil, ErrCapacity
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[T]{
		minLeaf:     minLeaf,
		maxPerLeaf:  maxPerLeaf,
		sortQueries: o.SortQueries,
		nodeOf:      make(map[T]*Node[T]),
	}
	if t.sortQueries {
		t.seq = make(map[T]int64)
	}

	return t, nil
}

// newNode allocates a node covering bounds, tagged with the next diagnostic ID.
func (t *Tree[T]) newNode(bounds geom.Rect) *Node[T] {
	t.nextNodeID++

	return &Node[T]{
		id:      t.nextNodeID,
		bounds:  bounds,
		objects: make(map[T]struct{}),
	}
}

// Insert indexes obj so that any subsequent Query intersecting its bounds
// returns it exactly once.
//
// Precondition: obj is not currently indexed. The tree does not deduplicate;
// inserting an object twice while present leaves the index undefined.
//
// Returns ErrFlatBounds if obj's bounds have a zero or negative extent, and
// ErrBoundsViolation if obj's bounds escape a region during descent, which
// can only happen when a caller mutated bounds without reinsertion; in either
// case no state change is left behind.
// Complexity: O(depth) amortized; growth adds O(log span-ratio) root doublings.
func (t *Tree[T]) Insert(obj T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	b := obj.Bounds()
	if !b.Size().IsPositive() {
		return fmt.Errorf("insert %v: %w", b, ErrFlatBounds)
	}
	var seqAssigned bool
	if t.sortQueries {
		if _, ok := t.seq[obj]; !ok {
			t.seq[obj] = t.nextSeq
			t.nextSeq++
			seqAssigned = true
		}
	}

	if t.root == nil {
		t.seedRoot(b)
	}
	t.grow(b)

	if err := t.place(t.root, obj, b); err != nil {
		if seqAssigned {
			delete(t.seq, obj)
		}

		return err
	}

	return nil
}

// seedRoot creates the first root: the smallest power-of-two multiple of the
// minimum leaf size that covers b, centered on b's center. Sizing the root
// as minLeaf·2^k keeps every later subdivision bottoming out exactly at the
// minimum leaf size.
func (t *Tree[T]) seedRoot(b geom.Rect) {
	k := 1.0
	for b.W > t.minLeaf.W*k || b.H > t.minLeaf.H*k {
		k *= 2
	}
	w, h := t.minLeaf.W*k, t.minLeaf.H*k
	cx, cy := b.Center()
	t.root = t.newNode(geom.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h})
}

// grow doubles the root away from b until the root contains b. Each step
// builds a new root twice the current extents, positioned so the existing
// root becomes the quadrant opposite the growth direction, with the other
// three quadrants fresh empty leaves.
// Complexity: O(log(required span / current span)) doublings.
func (t *Tree[T]) grow(b geom.Rect) {
	for !t.root.bounds.Contains(b) {
		rb := t.root.bounds
		// Growth direction per axis, from origin comparison.
		west := b.X < rb.X
		south := b.Y < rb.Y

		nb := geom.Rect{X: rb.X, Y: rb.Y, W: rb.W * 2, H: rb.H * 2}
		if west {
			nb.X = rb.X - rb.W
		}
		if south {
			nb.Y = rb.Y - rb.H
		}

		// The old root occupies the quadrant opposite the growth direction.
		var keep Quadrant
		switch {
		case west && south:
			keep = NorthEast
		case west:
			keep = SouthEast
		case south:
			keep = NorthWest
		default:
			keep = SouthWest
		}

		next := t.newNode(nb)
		for _, q := range quadrants {
			if q == keep {
				next.setChild(q, t.root)
			} else {
				next.setChild(q, t.newNode(quadrantRect(nb, q)))
			}
		}
		t.root = next
	}
}

// place stores obj (with bounds b) in the subtree rooted at n: subdividing an
// overflowing leaf, descending into the single child that fully contains b,
// or keeping obj at n when it straddles a quadrant boundary.
func (t *Tree[T]) place(n *Node[T], obj T, b geom.Rect) error {
	if !n.bounds.Contains(b) {
		return fmt.Errorf("place %v into node %d %v: %w", b, n.id, n.bounds, ErrBoundsViolation)
	}

	if !n.HasChildren() && len(n.objects)+1 > t.maxPerLeaf && t.canSplit(n.bounds) {
		t.split(n)
	}

	if n.HasChildren() {
		for _, q := range quadrants {
			if c := n.children[q]; c.bounds.Contains(b) {
				return t.place(c, obj, b)
			}
		}
	}

	n.objects[obj] = struct{}{}
	t.nodeOf[obj] = n

	return nil
}

// canSplit reports whether subdividing bounds keeps both quadrant extents at
// or above the minimum leaf size.
func (t *Tree[T]) canSplit(bounds geom.Rect) bool {
	return bounds.W/2 >= t.minLeaf.W && bounds.H/2 >= t.minLeaf.H
}

// split subdivides leaf n into four equal quadrants and pushes every directly
// held object down into the single child that fully contains it; straddlers
// stay at n. Relocation recurses through place, so a child may itself split.
func (t *Tree[T]) split(n *Node[T]) {
	for _, q := range quadrants {
		n.setChild(q, t.newNode(quadrantRect(n.bounds, q)))
	}
	for o := range n.objects {
		ob := o.Bounds()
		for _, q := range quadrants {
			if c := n.children[q]; c.bounds.Contains(ob) {
				delete(n.objects, o)
				// Cannot fail: c's bounds contain ob by the check above.
				_ = t.place(c, o, ob)

				break
			}
		}
	}
}
