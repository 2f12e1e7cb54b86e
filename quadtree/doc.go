// Package quadtree implements a dynamic, generic region quadtree: a spatial
// index over axis-aligned bounded objects supporting insertion, removal, and
// rectangular range queries while the indexed region grows and shrinks with
// its contents.
//
// What:
//
//   - Tree[T] indexes any comparable type exposing a Bounds() geom.Rect
//     accessor (the Bounded constraint).
//   - The root materializes lazily around the first object and doubles
//     outward whenever a new object falls outside it, so the coordinate
//     space is effectively unbounded.
//   - Leaves holding more than the configured maximum subdivide into four
//     equal quadrants; objects straddling a quadrant boundary stay at the
//     parent level.
//   - Removals cascade a merge check upward, collapsing subdivisions whose
//     population dropped below the maximum, and may shrink the root down to
//     a single surviving quadrant.
//   - Query collects every indexed object intersecting a region, pruning
//     entire non-intersecting subtrees.
//
// Why:
//
//   - Game worlds: broad-phase collision and interest management over
//     entities of wildly varying position and size.
//   - Simulations & editors: viewport queries against sparse, moving data.
//   - Any workload where the populated region drifts and a fixed world
//     rectangle would waste depth or overflow.
//
// Complexity (d = tree depth, k = result size, n = objects):
//
//   - Insert:  O(d) amortized; root growth adds O(log span-ratio) steps.
//   - Remove:  O(1) lookup + O(subtree) for the merge check.
//   - Query:   O(nodes overlapping region + k); O(k·log k) extra when
//     sorted query order is enabled.
//   - ObjectCount: O(1). NodeCount/AllNodes: O(nodes).
//
// Options:
//
//   - WithSortedQueries: Query returns objects in first-inserted order at
//     the cost of a sort pass and per-object bookkeeping.
//
// Errors:
//
//   - ErrLeafSize: minimum leaf size has a non-positive extent.
//   - ErrCapacity: maximum objects per leaf is less than one.
//   - ErrNotFound: Remove called for an object that is not indexed.
//   - ErrFlatBounds: Insert called for an object with a zero or negative
//     bounds extent.
//   - ErrBoundsViolation: an object's bounds escape the region being
//     descended into — caller mutated bounds without reinsertion.
//
// Concurrency:
//
//	All public operations are guarded by one tree-wide sync.RWMutex held
//	for the operation's full duration: mutations are exclusive, queries and
//	introspection share. The structure is serially consistent; no operation
//	blocks on I/O or accepts cancellation.
package quadtree
