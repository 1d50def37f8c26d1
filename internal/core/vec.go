package core

import "math"

// Vec2 is a 2D vector in world units. Y grows upwards.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// ok is false for zero, infinite or NaN vectors, in which case v is returned unchanged.
func (v Vec2) Normalize() (n Vec2, ok bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return v, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// NormalizeOr returns v scaled to unit length, or fallback when v cannot be normalized.
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	if n, ok := v.Normalize(); ok {
		return n
	}
	return fallback
}
