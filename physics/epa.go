// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package physics

import (
	"math"

	"github.com/gazed/vu/math/vec2"
)

// epa.go implements the Expanding Polytope Algorithm: given a GJK
// simplex that already encloses the origin, it walks the polytope
// outward edge by edge until it finds the edge closest to the origin
// that the Minkowski difference can no longer push past. The result is
// the minimum translation vector separating the two shapes.

// epaEpsilon is the default convergence tolerance: once a support
// point lands within this distance of the candidate edge, the edge is
// taken as the true penetration depth.
const epaEpsilon = 0.001

// epaMaxIters hard-caps the expansion loop. On a cap hit the best
// normal found so far is returned rather than looping forever on
// adversarial or near-degenerate polytopes.
const epaMaxIters = 32

// polytopeEdge records the closest-to-origin edge of the current
// polytope: its outward normal, distance from the origin, and the
// index after which a new support point should be inserted.
type polytopeEdge struct {
	normal   vec2.V
	distance float64
	index    int // insertion point: new vertex goes between poly[index] and poly[index+1].
}

// closestEdge scans every edge of the (counter-clockwise wound)
// polytope and returns the one with minimum distance to the origin,
// along with its outward-pointing normal.
func closestEdge(poly []vec2.V) polytopeEdge {
	best := polytopeEdge{distance: math.MaxFloat64}
	for i := 0; i < len(poly); i++ {
		j := (i + 1) % len(poly)
		a, b := poly[i], poly[j]
		edge := b.Sub(a)
		normal := vec2.V{X: edge.Y, Y: -edge.X}.Unit() // perpendicular, not yet outward-facing.
		if normal.Dot(a) < 0 {
			normal = normal.Neg()
		}
		distance := normal.Dot(a)
		if distance < best.distance {
			best = polytopeEdge{normal: normal, distance: distance, index: i}
		}
	}
	return best
}

// epaOptions groups the tunables so callers (the solver) can expose
// them without threading extra parameters through every call site.
type epaOptions struct {
	epsilon  float64
	maxIters int
}

// epaPenetration expands the terminal GJK simplex into the minimum
// translation vector: the direction and magnitude needed to separate
// A and B along the shallowest axis. The vector points from B into A.
func epaPenetration(a, b *Body, start simplex, opts epaOptions) (vec2.V, bool) {
	poly := []vec2.V{start.a(), start.b(), start.c()}
	ensureCCW(poly)

	edge := closestEdge(poly)
	for i := 0; i < opts.maxIters; i++ {
		support := supportMinkowski(a, b, edge.normal)
		d := edge.normal.Dot(support)
		if math.Abs(d-edge.distance) <= opts.epsilon {
			return penetrationVector(edge, opts.epsilon), true
		}
		poly = insertVertex(poly, edge.index, support)
		edge = closestEdge(poly)
	}
	// Hard iteration cap reached: return the best normal found so far.
	return penetrationVector(edge, opts.epsilon), false
}

// penetrationVector turns a polytope edge into the final penetration
// vector. The edge normal points out of A - B, from A towards B, so it
// is negated to point from B into A. A degenerate (zero-length) normal
// gives the zero vector, so no push is applied; there is no fallback to
// the edge's raw normal.
func penetrationVector(edge polytopeEdge, epsilon float64) vec2.V {
	if edge.normal.AeqZ() {
		return vec2.Zero
	}
	return edge.normal.Scale(-(edge.distance + epsilon))
}

// ensureCCW reorders a 3-point polytope to counter-clockwise winding,
// which closestEdge's outward-normal convention (before the origin-side
// flip) relies on to converge quickly.
func ensureCCW(poly []vec2.V) {
	area := poly[1].Sub(poly[0]).Cross(poly[2].Sub(poly[0]))
	if area < 0 {
		poly[1], poly[2] = poly[2], poly[1]
	}
}

// insertVertex inserts v into poly immediately after index, preserving
// the winding order of the rest of the polytope.
func insertVertex(poly []vec2.V, index int, v vec2.V) []vec2.V {
	out := make([]vec2.V, 0, len(poly)+1)
	out = append(out, poly[:index+1]...)
	out = append(out, v)
	out = append(out, poly[index+1:]...)
	return out
}
