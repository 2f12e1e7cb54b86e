// Package geom defines Size and Rect, the axis-aligned primitives of quadgrid.
package geom

import "fmt"

// Size holds rectangular extents in world units.
type Size struct {
	// W is the horizontal extent (width).
	W float64
	// H is the vertical extent (height).
	H float64
}

// NewSize constructs a Size from the given extents.
// Complexity: O(1).
func NewSize(w, h float64) Size {
	return Size{W: w, H: h}
}

// IsPositive reports whether both extents are strictly greater than zero.
// Complexity: O(1).
func (s Size) IsPositive() bool {
	return s.W > 0 && s.H > 0
}

// String renders the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}

// Rect is an axis-aligned rectangle anchored at its minimum corner (X, Y),
// extending W units east and H units north. Y grows northward, so the
// anchor is the south-west corner.
type Rect struct {
	// X, Y locate the minimum (south-west) corner.
	X, Y float64
	// W, H are the extents east and north of the anchor.
	W, H float64
}

// NewRect constructs a Rect from its minimum corner and extents.
// Complexity: O(1).
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the eastern edge coordinate.
// Complexity: O(1).
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the northern edge coordinate.
// Complexity: O(1).
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Center returns the midpoint of the rectangle.
// Complexity: O(1).
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Size returns the rectangle's extents as a Size.
// Complexity: O(1).
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Contains reports whether o lies entirely within r. Containment is closed:
// a rectangle contains itself, and edge-touching still counts as inside.
// Complexity: O(1).
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// ContainsPoint reports whether the point (x, y) lies within r, edges included.
// Complexity: O(1).
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.MaxX() && y >= r.Y && y <= r.MaxY()
}

// Intersects reports whether r and o share interior area. Intersection is
// open: rectangles that merely touch along an edge or corner do not
// intersect.
// Complexity: O(1).
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && r.MaxX() > o.X &&
		r.Y < o.MaxY() && r.MaxY() > o.Y
}

// String renders the rectangle as "(X,Y WxH)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}
