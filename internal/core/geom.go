// Package core provides fundamental types and utilities for the pong client.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Rect represents an integer cell rectangle on the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// AABB is an axis-aligned bounding box in world units.
type AABB struct {
	Min, Max Vec2
}

// BoxAround builds the box of the given size centred on center.
func BoxAround(center, size Vec2) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Overlaps reports whether two boxes touch or intersect.
// All four bounds are inclusive, so boxes sharing an edge overlap.
func (b AABB) Overlaps(other AABB) bool {
	return b.Min.X <= other.Max.X &&
		b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y &&
		b.Max.Y >= other.Min.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Signum returns -1, 0 or 1 according to the sign of x.
// Zero (of either sign) and NaN map to 0.
func Signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
