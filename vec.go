package springline

import "math"

// Vec2 is a 2D vector used for positions, offsets, and directions throughout
// the API. It is a plain value type; copy it freely.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector has no
// direction, so it is returned unchanged rather than signaling an error.
func (v Vec2) Normalize() Vec2 {
	ln := v.Length()
	if ln == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / ln, Y: v.Y / ln}
}
