// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/vu/math/vec2"
)

func TestResolveSegmentDiskInterior(t *testing.T) {
	seg := NewSegment(vec2.V{X: 0, Y: 0}, vec2.V{X: 100, Y: 0}, true)
	disk := NewDisk(vec2.V{X: 50, Y: 5}, 10, false)
	resolveSegmentDisk(seg, disk)
	if disk.position.Y <= 5 {
		t.Errorf("expected disk pushed further away from the segment, got %v", disk.position)
	}
}

func TestResolveSegmentDiskEndpointZero(t *testing.T) {
	seg := NewSegment(vec2.V{X: 0, Y: 0}, vec2.V{X: 100, Y: 0}, true)
	disk := NewDisk(vec2.V{X: -5, Y: 0}, 10, false)
	resolveSegmentDisk(seg, disk)
	if disk.position.X >= -5 {
		t.Errorf("expected disk pushed away from endpoint 0, got %v", disk.position)
	}
}

func TestResolveSegmentDiskNoCollisionWhenFar(t *testing.T) {
	seg := NewSegment(vec2.V{X: 0, Y: 0}, vec2.V{X: 100, Y: 0}, true)
	disk := NewDisk(vec2.V{X: 50, Y: -12}, 10, false)
	before := disk.position
	resolveSegmentDisk(seg, disk)
	if !disk.position.Aeq(before) {
		t.Errorf("expected no movement for a non-colliding graze, got %v -> %v", before, disk.position)
	}
}

func TestResolveSegmentDiskAnchoredDiskUnmoved(t *testing.T) {
	seg := NewSegment(vec2.V{X: 0, Y: 0}, vec2.V{X: 100, Y: 0}, false)
	disk := NewDisk(vec2.V{X: 50, Y: 5}, 10, true)
	resolveSegmentDisk(seg, disk)
	if !disk.position.Aeq(vec2.V{X: 50, Y: 5}) {
		t.Errorf("expected anchored disk to stay put, got %v", disk.position)
	}
}
