// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package vec2 provides the 2D vector and scalar math needed by the
// physics package: add/sub/scale, dot products, lengths, normalization,
// rotation, and the perpendicular/triple-product helpers that the
// narrow phase collision routines lean on.
//
// Package vec2 is the 2D sibling of the vu engine's 3D math/lin package;
// a rigid body solver confined to a plane has no use for quaternions,
// 3x3 matrices, or 4x4 transforms, so this package keeps only what a
// point-mass/polygon simulation actually touches.
package vec2

import "math"

// Various math constants shared by the physics package.
const (
	Pi   float64 = math.Pi
	PiX2 float64 = Pi * 2

	// Epsilon is used to distinguish when a float is close enough to a
	// number, or a vector close enough to zero, that it makes no difference.
	Epsilon float64 = 0.000001
)

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Clamp returns s bounded to the range [lb, ub].
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}

// V is a 2 element vector. This can also be used as a point.
type V struct {
	X float64
	Y float64
}

// Zero is the additive identity. Useful as a recovery value when a
// normalization or division would otherwise be undefined.
var Zero = V{}

// Eq (==) returns true if v and a have identical components.
func (v V) Eq(a V) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if v and a have essentially the
// same components. Used where a direct comparison is unlikely to
// return true due to floating point rounding.
func (v V) Aeq(a V) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// AeqZ (~=) almost-equals-zero returns true if the square length of v
// is close enough to zero that it makes no difference.
func (v V) AeqZ() bool { return v.Dot(v) < Epsilon }

// Add returns v + a.
func (v V) Add(a V) V { return V{v.X + a.X, v.Y + a.Y} }

// Sub returns v - a.
func (v V) Sub(a V) V { return V{v.X - a.X, v.Y - a.Y} }

// Neg returns -v.
func (v V) Neg() V { return V{-v.X, -v.Y} }

// Scale returns v scaled by s.
func (v V) Scale(s float64) V { return V{v.X * s, v.Y * s} }

// Dot returns the dot product of v and a.
func (v V) Dot(a V) float64 { return v.X*a.X + v.Y*a.Y }

// Cross returns the scalar (z-only) 2D cross product of v and a. This is
// the signed area of the parallelogram spanned by v and a, not a vector;
// a full 3D cross of two in-plane vectors only has a z component.
func (v V) Cross(a V) float64 { return v.X*a.Y - v.Y*a.X }

// TripleProduct returns (a x b) x c, keeping only the in-plane result.
// With a == c, as GJK's line-simplex case calls it, this recovers the
// direction perpendicular to a that leans towards b.
func TripleProduct(a, b, c V) V {
	ac := a.Dot(c)
	bc := b.Dot(c)
	return V{b.X*ac - a.X*bc, b.Y*ac - a.Y*bc}
}

// Len returns the length (magnitude) of v.
func (v V) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the squared length of v. Cheaper than Len when only
// used for comparison.
func (v V) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between v and a.
func (v V) Dist(a V) float64 { return v.Sub(a).Len() }

// Unit returns v normalized to unit length. Returns the zero vector
// instead of dividing by zero when v is (almost) the origin - callers
// in the collision resolvers rely on this to mean "no push this step"
// rather than propagating a NaN.
func (v V) Unit() V {
	length := v.Len()
	if length < Epsilon {
		return Zero
	}
	return v.Scale(1.0 / length)
}

// Perp returns v rotated 90 degrees counter-clockwise: (x,y) -> (-y,x).
func (v V) Perp() V { return V{-v.Y, v.X} }

// Rotate returns v rotated by angle radians about the origin.
func (v V) Rotate(angle float64) V {
	s, c := math.Sin(angle), math.Cos(angle)
	return V{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Lerp returns the linear interpolation of v to a by the given ratio.
func (v V) Lerp(a V, ratio float64) V {
	return V{v.X + (a.X-v.X)*ratio, v.Y + (a.Y-v.Y)*ratio}
}

// WrapAngle keeps a rotation within (-2*Pi, 2*Pi) by adding or
// subtracting a full turn whenever it crosses a boundary, matching the
// accumulate-a-motor-each-substep usage of a spinning polygon.
func WrapAngle(radians float64) float64 {
	switch {
	case radians >= PiX2:
		return radians - PiX2
	case radians <= -PiX2:
		return radians + PiX2
	}
	return radians
}
