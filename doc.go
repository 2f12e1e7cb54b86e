// Package quadgrid is an in-memory playground for dynamic spatial indexing —
// a generic region quadtree that stores axis-aligned bounded objects and
// answers axis-aligned range queries efficiently while the indexed space
// grows and shrinks with its contents.
//
// 🚀 What is quadgrid?
//
//	A modern, thread-safe library that brings together:
//		• Core primitives: axis-aligned rectangles & sizes in world units
//		• A generic quadtree over any type exposing a bounds accessor
//		• Lazy roots: the tree materializes around the first object
//		• Unbounded space: the root doubles outward toward new objects
//		• Self-pruning: removals merge empty subdivisions back together
//		• Optional insertion-order query results
//
// ✨ Why choose quadgrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, serially consistent operations
//   - Pure Go core – generics, no cgo
//   - Inspectable – node/object counts and full node traversal for debugging
//
// Under the hood, everything is organized under two subpackages:
//
//	geom/     — Rect & Size value types with containment/intersection math
//	quadtree/ — the dynamic region quadtree: insert, remove, range query
//
// Quick ASCII example (a root grown north-east after two far-apart inserts):
//
//	+---------+---------+
//	|         |       B |
//	|   NW    |   NE    |
//	+---------+---------+
//	| A       |         |
//	|   SW    |   SE    |
//	+---------+---------+
//
// See the quadtree package documentation for the full API and complexity notes.
package quadgrid
