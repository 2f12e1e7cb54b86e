// Package quadtree defines the core types, options, and sentinel errors for
// the quadgrid region quadtree.
package quadtree

import (
	"errors"

	"github.com/katalvlaran/quadgrid/geom"
)

// Sentinel errors for quadtree operations.
var (
	// ErrLeafSize indicates a minimum leaf size with a non-positive extent.
	ErrLeafSize = errors.New("quadtree: minimum leaf size must have positive extents")

	// ErrCapacity indicates a per-leaf object maximum below one.
	ErrCapacity = errors.New("quadtree: max objects per leaf must be at least 1")

	// ErrNotFound indicates Remove was called for an object that is not indexed.
	ErrNotFound = errors.New("quadtree: object not found")

	// ErrFlatBounds indicates Insert was called for an object whose bounds
	// have a zero or negative extent. Intersection is open, so a flat object
	// could never be found by any query, its own bounds included.
	ErrFlatBounds = errors.New("quadtree: object bounds must have positive extents")

	// ErrBoundsViolation indicates an object's bounds escaped the region being
	// descended into during insertion. This signals caller misuse (bounds
	// mutated without reinsertion) or an internal bug; the insert is aborted
	// before any structural change.
	ErrBoundsViolation = errors.New("quadtree: object bounds not contained by node region")
)

// Bounded is the sole capability the index requires of stored elements:
// comparability (objects are map keys internally) and a rectangular bounds
// accessor. Bounds must have positive extents and must stay fixed while the
// object is indexed; to move an object, remove it, update its bounds, and
// insert it again.
type Bounded interface {
	comparable
	Bounds() geom.Rect
}

// Quadrant identifies one of the four children of a subdivided node.
type Quadrant uint8

const (
	// NorthWest is the upper-left quadrant (west half, north half).
	NorthWest Quadrant = iota
	// NorthEast is the upper-right quadrant (east half, north half).
	NorthEast
	// SouthWest is the lower-left quadrant (west half, south half).
	SouthWest
	// SouthEast is the lower-right quadrant (east half, south half).
	SouthEast
)

// quadrants fixes the descent order used by insertion and traversal.
var quadrants = [4]Quadrant{NorthWest, NorthEast, SouthWest, SouthEast}

// String returns the compass name of the quadrant.
func (q Quadrant) String() string {
	switch q {
	case NorthWest:
		return "NorthWest"
	case NorthEast:
		return "NorthEast"
	case SouthWest:
		return "SouthWest"
	case SouthEast:
		return "SouthEast"
	default:
		return "Unknown"
	}
}

// Option configures optional behavior of a Tree before creation.
// Use with New(minLeaf, maxPerLeaf, opts...).
type Option func(*Options)

// Options holds the configurable flags of a Tree. All fields are fixed at
// construction time.
type Options struct {
	// SortQueries, if true, makes Query return objects ascending by
	// insertion order, at the cost of a sort pass per query and one
	// sequence-number entry per indexed object.
	SortQueries bool
}

// DefaultOptions returns the Options a Tree is built with when no Option is
// supplied: unsorted (traversal-order) query results.
func DefaultOptions() Options {
	return Options{SortQueries: false}
}

// WithSortedQueries returns an Option that enables first-inserted-first-
// returned query ordering.
func WithSortedQueries() Option {
	return func(o *Options) { o.SortQueries = true }
}
