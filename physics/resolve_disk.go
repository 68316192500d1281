// Copyright © 2024 Galvanized Logic Inc.

package physics

import "github.com/gazed/vu/math/vec2"

// resolve_disk.go is the closed-form Disk-Disk resolver: no support
// queries, no simplex, just the center distance versus the sum of radii.

// resolveDiskDisk pushes two overlapping disks apart along the axis
// between their centers, half the correction to each non-anchored
// side. If one side is anchored, the other absorbs its discarded half
// too only insofar as its own half still applies - the anchored side's
// half is simply dropped, not transferred.
func resolveDiskDisk(a, b *Body) {
	axis := a.position.Sub(b.position)
	d := axis.Len()
	r := a.diskRadius + b.diskRadius
	if d >= r {
		return
	}
	n := axis.Unit() // Unit() answers vec2.Zero when d is (numerically) zero.
	delta := r - d
	if !a.anchored {
		a.position = a.position.Add(n.Scale(0.5 * delta))
	}
	if !b.anchored {
		b.position = b.position.Sub(n.Scale(0.5 * delta))
	}
}

// segmentFoot projects p onto the infinite line through p0-p1 and
// reports whether the foot lies within the segment (the triangle
// inequality test, with a small tolerance for points right at an end).
func segmentFoot(p0, p1, p vec2.V) (foot vec2.V, onSegment bool) {
	edge := p1.Sub(p0)
	lenSqr := edge.LenSqr()
	if lenSqr < vec2.Epsilon {
		return p0, true
	}
	t := p.Sub(p0).Dot(edge) / lenSqr
	foot = p0.Add(edge.Scale(t))

	edgeLen := edge.Len()
	spread := foot.Dist(p0) + foot.Dist(p1)
	return foot, spread <= edgeLen+0.1
}
