// Package vector provides 2D vector operations
package vector

import "math"

// NewVec2 creates a new 2D vector with the given components
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Vec2 represents a point or offset in the firing plane
// with X=downrange, Y=up (meters)
type Vec2 struct{ X, Y float64 }

// Add returns the sum of two vectors
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the difference between two vectors
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales a vector by a scalar
func (v Vec2) Mul(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Norm returns the vector's magnitude (Euclidean norm)
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Dot returns the dot product of two vectors
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Lerp returns the point a fraction t of the way from v to o
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a unit vector in the same direction
func (v Vec2) Normalize() Vec2 {
	norm := v.Norm()
	if norm == 0 {
		return Vec2{}
	}
	return v.Mul(1 / norm)
}
