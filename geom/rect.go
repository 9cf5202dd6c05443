// Package geom implements rectangle arithmetic and ICCCM size-hints
// negotiation. It has no dependency on the X connection or the client
// registry: every function here is a pure transform on plain ints, so the
// layout and focus packages can be exercised without an X server.
package geom

// Rect is an X11 window geometry: top-left corner plus extent. Negative X/Y
// is legal (a window can straddle the root origin).
type Rect struct {
	X, Y, W, H int
}

// Center returns the rectangle's center point.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point (x, y) falls within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlapping area of r and o, in pixels. Zero when
// the rectangles don't overlap.
func (r Rect) Intersect(o Rect) int {
	ix := max(0, min(r.X+r.W, o.X+o.W)-max(r.X, o.X))
	iy := max(0, min(r.Y+r.H, o.Y+o.H)-max(r.Y, o.Y))
	return ix * iy
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
