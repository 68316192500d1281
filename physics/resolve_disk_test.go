// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/vu/math/vec2"
)

func TestResolveDiskDiskHalfSplit(t *testing.T) {
	a := NewDisk(vec2.V{X: 0, Y: 0}, 10, false)
	b := NewDisk(vec2.V{X: 15, Y: 0}, 10, false)
	resolveDiskDisk(a, b)
	if d := a.position.Dist(b.position); !vec2.Aeq(d, 20) {
		t.Errorf("expected separation of exactly 20 (sum of radii), got %v", d)
	}
}

func TestResolveDiskDiskAnchoredSideUnmoved(t *testing.T) {
	a := NewDisk(vec2.V{X: 0, Y: 0}, 10, false)
	b := NewDisk(vec2.V{X: 15, Y: 0}, 10, true)
	resolveDiskDisk(a, b)
	if !b.position.Aeq(vec2.V{X: 15, Y: 0}) {
		t.Errorf("expected anchored disk to stay put, got %v", b.position)
	}
	if a.position.X >= 0 {
		t.Errorf("expected free disk to move away from the anchored one, got %v", a.position)
	}
}

func TestResolveDiskDiskNoOverlapIsNoOp(t *testing.T) {
	a := NewDisk(vec2.V{X: 0, Y: 0}, 10, false)
	b := NewDisk(vec2.V{X: 100, Y: 0}, 10, false)
	resolveDiskDisk(a, b)
	if !a.position.Aeq(vec2.V{X: 0, Y: 0}) || !b.position.Aeq(vec2.V{X: 100, Y: 0}) {
		t.Error("expected non-overlapping disks to be left unchanged")
	}
}

func TestSegmentFootOutsideSegment(t *testing.T) {
	_, onSegment := segmentFoot(vec2.V{X: 0, Y: 0}, vec2.V{X: 10, Y: 0}, vec2.V{X: 20, Y: 1})
	if onSegment {
		t.Error("expected a point far past the segment's end to not be on the segment")
	}
}

func TestSegmentFootInsideSegment(t *testing.T) {
	foot, onSegment := segmentFoot(vec2.V{X: 0, Y: 0}, vec2.V{X: 10, Y: 0}, vec2.V{X: 5, Y: 3})
	if !onSegment {
		t.Error("expected the foot of a point above the segment's midpoint to be on the segment")
	}
	if !foot.Aeq(vec2.V{X: 5, Y: 0}) {
		t.Errorf("expected foot (5,0), got %v", foot)
	}
}
