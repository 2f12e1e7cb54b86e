// Package quadtree_test shared fixtures: a minimal Bounded implementation
// and helpers used across the test files.
package quadtree_test

import (
	"testing"

	"github.com/katalvlaran/quadgrid/geom"
	"github.com/katalvlaran/quadgrid/quadtree"
)

// item is the test implementation of quadtree.Bounded: a named box with
// fixed bounds. Tests index *item so identity is pointer identity and two
// items may share bounds.
type item struct {
	name string
	b    geom.Rect
}

func (i *item) Bounds() geom.Rect { return i.b }

// box builds an item at the given minimum corner and extents.
func box(name string, x, y, w, h float64) *item {
	return &item{name: name, b: geom.NewRect(x, y, w, h)}
}

// newTree builds a Tree[*item] and fails the test on constructor error.
func newTree(t *testing.T, minLeaf geom.Size, maxPerLeaf int, opts ...quadtree.Option) *quadtree.Tree[*item] {
	t.Helper()
	tr, err := quadtree.New[*item](minLeaf, maxPerLeaf, opts...)
	if err != nil {
		t.Fatalf("New(%v, %d) error: %v", minLeaf, maxPerLeaf, err)
	}

	return tr
}

// mustInsert inserts each item and fails the test on error.
func mustInsert(t *testing.T, tr *quadtree.Tree[*item], items ...*item) {
	t.Helper()
	for _, it := range items {
		if err := tr.Insert(it); err != nil {
			t.Fatalf("Insert(%s %v) error: %v", it.name, it.b, err)
		}
	}
}

// names extracts item names in slice order.
func names(items []*item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}

	return out
}
