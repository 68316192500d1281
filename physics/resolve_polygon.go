// Copyright © 2024 Galvanized Logic Inc.

package physics

// resolve_polygon.go resolves any pair where at least one side is a
// Polygon: run GJK for the boolean test, EPA for the penetration
// vector on a hit, then apply a scaled fraction of that vector to each
// non-anchored side. The fractional scale (rather than full
// correction) is what lets many sub-steps converge smoothly instead of
// overshooting - the position-based-dynamics discipline of many small
// corrections.
func resolvePolygon(a, b *Body, opts epaOptions, scale float64) (collided, converged bool) {
	hit, terminal := gjkIntersects(a, b)
	if !hit {
		return false, true
	}
	mtv, converged := epaPenetration(a, b, terminal, opts)
	push := mtv.Scale(scale)
	if !a.anchored {
		a.position = a.position.Add(push.Scale(0.5))
		a.refreshPoints()
	}
	if !b.anchored {
		b.position = b.position.Sub(push.Scale(0.5))
		b.refreshPoints()
	}
	return true, converged
}
