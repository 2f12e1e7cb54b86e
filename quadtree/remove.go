// This file implements removal and the structural cleanup that follows it:
// the upward merge/collapse cascade and the shallow root-shrink check.

package quadtree

// Remove un-indexes a previously inserted object. Returns ErrNotFound if obj
// is not currently indexed. Removal may collapse subdivisions whose
// population dropped to the per-leaf maximum or below, and may replace the
// root with its single surviving quadrant.
// Complexity: O(1) lookup + O(affected subtree) for the merge cascade.
func (t *Tree[T]) Remove(obj T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.nodeOf[obj]
	if !ok {
		return ErrNotFound
	}
	delete(n.objects, obj)
	delete(t.nodeOf, obj)
	if t.sortQueries {
		// Sequence numbers are discarded, never reused; reinsertion gets a
		// fresh one.
		delete(t.seq, obj)
	}

	if n.parent != nil {
		t.mergeUpward(n.parent)
	}

	return nil
}

// mergeUpward runs the merge/collapse check at n and cascades it toward the
// root. A node whose whole subtree holds at most maxPerLeaf objects pulls
// every descendant object into its direct storage and discards its children.
// The cascade stops at the first ancestor that does not qualify; when it
// reaches the root, the root-shrink check runs regardless of whether the
// root itself merged.
func (t *Tree[T]) mergeUpward(n *Node[T]) {
	if n.HasChildren() && n.subtreeLen() <= t.maxPerLeaf {
		t.collapse(n)
		if n.parent != nil {
			t.mergeUpward(n.parent)

			return
		}
	}
	if n == t.root {
		t.shrinkRoot()
	}
}

// collapse pulls every object below n into n's direct storage and detaches
// all four children.
func (t *Tree[T]) collapse(n *Node[T]) {
	for _, q := range quadrants {
		t.pullUp(n, n.children[q])
	}
	for _, q := range quadrants {
		n.setChild(q, nil)
	}
}

// pullUp moves the objects of from's entire subtree into dst's direct
// storage, keeping the reverse lookup current.
func (t *Tree[T]) pullUp(dst, from *Node[T]) {
	for o := range from.objects {
		dst.objects[o] = struct{}{}
		t.nodeOf[o] = dst
	}
	from.objects = nil
	if from.HasChildren() {
		for _, q := range quadrants {
			t.pullUp(dst, from.children[q])
		}
	}
}

// shrinkRoot replaces an oversized root by its single populated quadrant:
// when the root holds no direct objects and exactly one immediate child
// subtree is non-empty, that child becomes the new root and its siblings are
// discarded. The check deliberately inspects only the root's direct
// children; it does not search for the deepest uniquely-populated quadrant.
func (t *Tree[T]) shrinkRoot() {
	r := t.root
	if r == nil || !r.HasChildren() || len(r.objects) != 0 {
		return
	}
	var survivor *Node[T]
	populated := 0
	for _, q := range quadrants {
		if c := r.children[q]; c.subtreeLen() > 0 {
			survivor = c
			populated++
		}
	}
	if populated != 1 {
		return
	}
	for _, q := range quadrants {
		r.setChild(q, nil)
	}
	t.root = survivor
}
