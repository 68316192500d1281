// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"github.com/gazed/vu/math/vec2"
)

// support.go answers "how far does this shape reach in direction d?"
// for each body variant. GJK and EPA only ever touch shapes through
// this one query, which is what lets both algorithms stay agnostic to
// whether they are working on a Disk, a Segment, or a Polygon.

// support returns the point of b farthest along direction d.
func (b *Body) support(d vec2.V) vec2.V {
	switch b.kind {
	case Disk:
		return b.position.Add(d.Unit().Scale(b.diskRadius))
	case Segment:
		return supportAmong(b.worldPoints(), d)
	case Polygon:
		return supportAmong(b.worldPoints(), d)
	}
	return b.position
}

// supportAmong returns whichever vertex has the greatest projection
// onto direction d. Used by both Segment (2 vertices) and Polygon
// (N >= 3 vertices) supports.
func supportAmong(points []vec2.V, d vec2.V) vec2.V {
	best := points[0]
	bestDot := best.Dot(d)
	for _, p := range points[1:] {
		if dot := p.Dot(d); dot > bestDot {
			best, bestDot = p, dot
		}
	}
	return best
}

// supportMinkowski returns the support point of the Minkowski
// difference A - B along direction d: support(A,d) - support(B,-d).
func supportMinkowski(a, b *Body, d vec2.V) vec2.V {
	return a.support(d).Sub(b.support(d.Neg()))
}
