// Copyright © 2024 Galvanized Logic Inc.

package physics

import "github.com/gazed/vu/math/vec2"

// resolve_segment.go is the closed-form Segment-Disk resolver: three
// ordered checks (near endpoint 0, near endpoint 1, near the segment's
// interior) against a disk, translating the segment rigidly on a hit.

// resolveSegmentDisk resolves a collision between segment seg and disk
// disk, in that argument order; callers with (Disk, Segment) swap args.
func resolveSegmentDisk(seg, disk *Body) {
	p0, p1 := seg.points[0], seg.points[1]

	if push, ok := endpointPush(p0, disk); ok {
		translateSegment(seg, disk, push)
		return
	}
	if push, ok := endpointPush(p1, disk); ok {
		translateSegment(seg, disk, push)
		return
	}

	foot, onSegment := segmentFoot(p0, p1, disk.position)
	if !onSegment {
		return
	}
	toFoot := foot.Sub(disk.position)
	if toFoot.Len() > disk.diskRadius {
		return
	}
	translateSegment(seg, disk, toFoot)
}

// endpointPush reports whether disk overlaps endpoint p, returning the
// vector (from disk center to p) to resolve along if so.
func endpointPush(p vec2.V, disk *Body) (vec2.V, bool) {
	toPoint := p.Sub(disk.position)
	if toPoint.Len() >= disk.diskRadius {
		return vec2.V{}, false
	}
	return toPoint, true
}

// translateSegment applies the half-split positional correction along
// axis to both bodies: the segment translates rigidly (no rotation),
// the disk moves the opposite way. axis points from the disk toward
// the segment's contact point.
func translateSegment(seg, disk *Body, axis vec2.V) {
	d := axis.Len()
	n := axis.Unit()
	delta := disk.diskRadius - d
	if !seg.anchored {
		shift := n.Scale(0.5 * delta)
		seg.position = seg.position.Add(shift)
		seg.refreshPoints()
	}
	if !disk.anchored {
		disk.position = disk.position.Sub(n.Scale(0.5 * delta))
	}
}
