// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/gazed/vu/math/vec2"
)

// Kind distinguishes the three body variants the solver understands.
// Bodies are a tagged sum type rather than a class hierarchy: dispatch
// on a pair of Kinds picks the resolver, and shape-specific state
// (radius, vertices, ...) only has meaning for its own Kind.
type Kind int

const (
	Disk Kind = iota
	Segment
	Polygon
)

// String names a Kind for logging and diagnostics.
func (k Kind) String() string {
	switch k {
	case Disk:
		return "disk"
	case Segment:
		return "segment"
	case Polygon:
		return "polygon"
	}
	return "unknown"
}

// NewDisk creates a disk body centered at center with the given
// physical (and bounding) radius.
func NewDisk(center vec2.V, radius float64, anchored bool) *Body {
	b := newBody(Disk, center, anchored)
	b.diskRadius = radius
	b.radius = radius
	return b
}

// NewSegment creates a segment body from its two world-space
// endpoints. The body's center is the endpoint midpoint; per the
// rendering contract the caller may instead supply an explicit center
// that lies on the segment via NewSegmentAt.
func NewSegment(p0, p1 vec2.V, anchored bool) *Body {
	center := p0.Add(p1).Scale(0.5)
	return NewSegmentAt(center, p0, p1, anchored)
}

// NewSegmentAt creates a segment body with an explicit center; center
// must lie on the line through p0 and p1 for the points/pointsRel
// invariant to describe the intended geometry.
func NewSegmentAt(center, p0, p1 vec2.V, anchored bool) *Body {
	b := newBody(Segment, center, anchored)
	b.pointsRel = []vec2.V{p0.Sub(center), p1.Sub(center)}
	b.radius = math.Max(b.pointsRel[0].Len(), b.pointsRel[1].Len())
	b.refreshPoints()
	return b
}

// NewPolygon creates a convex polygon body from world-space vertices,
// in either winding order, with at least 3 vertices. motor is the
// angle in radians added to the polygon's rotation every sub-step.
func NewPolygon(center vec2.V, vertices []vec2.V, anchored bool, motor float64) *Body {
	b := newBody(Polygon, center, anchored)
	b.pointsRel = make([]vec2.V, len(vertices))
	maxR := 0.0
	for i, v := range vertices {
		rel := v.Sub(center)
		b.pointsRel[i] = rel
		if l := rel.Len(); l > maxR {
			maxR = l
		}
	}
	b.radius = maxR
	b.motor = motor
	b.refreshPoints()
	return b
}

// NewRegularPolygon creates a regular N-gon (N >= 3) centered at
// center with the given circumradius, vertices placed at
// center + R*(cos(2*pi*k/N), sin(2*pi*k/N)) for k in [0, N).
func NewRegularPolygon(center vec2.V, circumradius float64, n int, anchored bool, motor float64) *Body {
	vertices := make([]vec2.V, n)
	for k := 0; k < n; k++ {
		theta := vec2.PiX2 * float64(k) / float64(n)
		vertices[k] = center.Add(vec2.V{X: circumradius * math.Cos(theta), Y: circumradius * math.Sin(theta)})
	}
	return NewPolygon(center, vertices, anchored, motor)
}
