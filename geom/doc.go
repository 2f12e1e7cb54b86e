// Package geom provides the axis-aligned geometric value types used by the
// quadgrid spatial index: Size and Rect.
//
// What:
//
//   - Size holds a pair of non-negative extents (width, height).
//   - Rect is an axis-aligned rectangle anchored at its minimum corner,
//     with Y growing northward.
//   - Containment is closed (a rectangle contains its own edges);
//     intersection is open (rectangles that merely touch do not intersect).
//
// Why:
//
//   - Spatial indexing: quadrant partitioning needs exact, predictable
//     edge semantics so every object lands in exactly one region.
//   - Game worlds / simulations: bounds tests in world units.
//
// Complexity:
//
//   - All operations are O(1) on plain float64 fields; Rect and Size are
//     small value types intended to be copied freely.
//
// Errors: none — these are pure structural values with no failure modes.
package geom
