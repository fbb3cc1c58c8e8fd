// Package geomath provides the planar value types the geometry and
// profile packages build on: an immutable 2-D vector, a pose, and a
// closed interval. Methods return new values rather than mutating the
// receiver, generalizing the teacher's mutable, chainable Vector2D
// (pkg/core/math/vec/vec2d.go) into the immutable value semantics the
// curve and path snapshots require.
package geomath

import "github.com/chewxy/math32"

// Vector2d is an immutable 2-D vector.
type Vector2d struct {
	X, Y float32
}

// Zero2d is the additive identity.
var Zero2d = Vector2d{}

// Polar2d builds a vector from a magnitude and an angle (radians).
func Polar2d(r, angle float32) Vector2d {
	return Vector2d{X: r * math32.Cos(angle), Y: r * math32.Sin(angle)}
}

func (v Vector2d) Add(o Vector2d) Vector2d { return Vector2d{v.X + o.X, v.Y + o.Y} }
func (v Vector2d) Sub(o Vector2d) Vector2d { return Vector2d{v.X - o.X, v.Y - o.Y} }
func (v Vector2d) Mul(c float32) Vector2d  { return Vector2d{v.X * c, v.Y * c} }
func (v Vector2d) Div(c float32) Vector2d  { return Vector2d{v.X / c, v.Y / c} }
func (v Vector2d) Neg() Vector2d           { return Vector2d{-v.X, -v.Y} }

// Dot returns the scalar (inner) product.
func (v Vector2d) Dot(o Vector2d) float32 { return v.X*o.X + v.Y*o.Y }

// Cross returns the scalar 2-D cross product v.X*o.Y - v.Y*o.X.
func (v Vector2d) Cross(o Vector2d) float32 { return v.X*o.Y - v.Y*o.X }

// Length2 returns the squared length (cheaper than Length).
func (v Vector2d) Length2() float32 { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vector2d) Length() float32 { return math32.Sqrt(v.Length2()) }

// LengthN returns the length raised to the n-th power, computed directly
// from the squared length for even n to avoid a redundant sqrt/pow pair.
func (v Vector2d) LengthN(n float32) float32 {
	if n == float32(int(n)) && int(n)%2 == 0 {
		return math32.Pow(v.Length2(), n/2)
	}
	return math32.Pow(v.Length(), n)
}

// Angle returns atan2(Y, X).
func (v Vector2d) Angle() float32 { return math32.Atan2(v.Y, v.X) }

// Normalized returns the unit vector in the direction of v, or Zero2d
// when v is (numerically) the zero vector.
func (v Vector2d) Normalized() Vector2d {
	l := v.Length()
	if l < 1e-9 {
		return Zero2d
	}
	return v.Div(l)
}

// Perpendicular returns v rotated +90 degrees: (-Y, X).
func (v Vector2d) Perpendicular() Vector2d { return Vector2d{-v.Y, v.X} }

// Rotated returns v rotated by theta radians about the origin.
func (v Vector2d) Rotated(theta float32) Vector2d {
	c, s := math32.Cos(theta), math32.Sin(theta)
	return Vector2d{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector2d) DistanceTo(o Vector2d) float32 { return v.Sub(o).Length() }
