// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"github.com/gazed/vu/math/vec2"
)

// gjk.go implements the Gilbert-Johnson-Keerthi boolean intersection
// test over the 2D Minkowski difference of two convex shapes. It is
// the narrow phase used whenever at least one of the colliding bodies
// is a Polygon; disk-disk and segment-disk have closed-form resolvers
// instead (see resolve_disk.go, resolve_segment.go).

// maxGJKIterations bounds the simplex-evolution loop. Two convex 2D
// shapes either resolve within a handful of iterations or will never
// resolve (degenerate/overlapping support queries); the cap turns a
// non-terminating edge case into "no collision" rather than a hang.
const maxGJKIterations = 32

// simplex is the set of Minkowski-difference points GJK has gathered
// so far, most-recently-added first. It never holds more than 3
// points: once a triangle encloses the origin the boolean test is done.
type simplex []vec2.V

func (s simplex) a() vec2.V { return s[0] }
func (s simplex) b() vec2.V { return s[1] }
func (s simplex) c() vec2.V { return s[2] }

// pushFront prepends point, keeping it as the most recently added.
func (s simplex) pushFront(point vec2.V) simplex {
	return append(simplex{point}, s...)
}

// crossVecScalar returns v x (0,0,s) restricted to the xy plane: the
// vector obtained by crossing an in-plane vector with a z-axis scalar.
func crossVecScalar(v vec2.V, s float64) vec2.V { return vec2.V{X: s * v.Y, Y: -s * v.X} }

// crossScalarVec returns (0,0,s) x v restricted to the xy plane.
func crossScalarVec(s float64, v vec2.V) vec2.V { return vec2.V{X: -s * v.Y, Y: s * v.X} }

// gjkIntersects runs the GJK boolean test on the Minkowski difference
// A - B. When the shapes intersect it also returns the terminal
// 3-point simplex, ready for EPA to expand into a penetration vector.
func gjkIntersects(a, b *Body) (hit bool, terminal simplex) {
	d := b.position.Sub(a.position)
	if d.AeqZ() {
		d = vec2.V{X: 1, Y: 0} // coincident centers: pick an arbitrary axis.
	}
	s := supportMinkowski(a, b, d)
	sx := simplex{s}
	d = s.Neg()

	for i := 0; i < maxGJKIterations; i++ {
		next := supportMinkowski(a, b, d)
		if next.Dot(d) <= 0 {
			return false, nil // the new point didn't pass the origin: no intersection.
		}
		sx = sx.pushFront(next)
		var enclosed bool
		sx, d, enclosed = evolveSimplex(sx, d)
		if enclosed {
			return true, sx
		}
	}
	return false, nil
}

// evolveSimplex advances the simplex towards the origin, returning the
// reduced simplex, the next search direction, and whether the origin
// has been enclosed (the 2-simplex and 3-simplex cases from the spec).
func evolveSimplex(sx simplex, d vec2.V) (simplex, vec2.V, bool) {
	switch len(sx) {
	case 2:
		return evolveLine(sx, d)
	case 3:
		return evolveTriangle(sx, d)
	}
	return sx, d, false
}

// evolveLine handles the 2-point simplex (line AB), A being the most
// recently added point.
func evolveLine(sx simplex, d vec2.V) (simplex, vec2.V, bool) {
	a, b := sx.a(), sx.b()
	ab := b.Sub(a)
	ao := a.Neg()
	if ab.Dot(ao) > 0 {
		dir := vec2.TripleProduct(ab, ao, ab)
		if dir.AeqZ() {
			dir = ab.Perp() // origin lies on line AB: search off either side of it.
		}
		return simplex{a, b}, dir, false
	}
	return simplex{a}, ao, false
}

// evolveTriangle handles the 3-point simplex (triangle ABC), A being
// the most recently added point.
func evolveTriangle(sx simplex, d vec2.V) (simplex, vec2.V, bool) {
	a, b, c := sx.a(), sx.b(), sx.c()
	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Neg()
	n := ab.Cross(ac) // signed area of ABC, the z-only 3D cross interpreted as a scalar.

	if crossScalarVec(n, ac).Dot(ao) > 0 {
		if ac.Dot(ao) > 0 {
			return simplex{a, c}, vec2.TripleProduct(ac, ao, ac), false
		}
		return evolveLine(simplex{a, b}, d)
	}
	if crossVecScalar(ab, n).Dot(ao) > 0 {
		return evolveLine(simplex{a, b}, d)
	}
	return sx, d, true // origin enclosed.
}
