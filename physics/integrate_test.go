// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/vu/math/vec2"
)

func TestIntegrateAppliesDisplacementAndAcceleration(t *testing.T) {
	b := NewDisk(vec2.V{X: 10, Y: 0}, 1, false)
	b.lastPosition = vec2.V{X: 8, Y: 0} // implicit velocity (2,0) per sub-step.
	b.acceleration = vec2.V{X: 0, Y: 100}

	b.integrate(1)

	want := vec2.V{X: 12, Y: 100} // 10 + (10-8) + 100*1^2
	if !b.position.Aeq(want) {
		t.Errorf("expected position %v, got %v", want, b.position)
	}
	if !b.acceleration.AeqZ() {
		t.Errorf("expected acceleration reset to zero, got %v", b.acceleration)
	}
}

func TestIntegrateSkipsAnchoredPosition(t *testing.T) {
	b := NewDisk(vec2.V{X: 5, Y: 5}, 1, true)
	b.acceleration = vec2.V{X: 0, Y: 1000}

	b.integrate(0.1)

	if !b.position.Aeq(vec2.V{X: 5, Y: 5}) {
		t.Errorf("expected anchored body to stay put, got %v", b.position)
	}
	if !b.position.Aeq(b.lastPosition) {
		t.Errorf("expected anchored invariant position == lastPosition, got %v vs %v", b.position, b.lastPosition)
	}
}

func TestIntegrateAdvancesMotorRotation(t *testing.T) {
	b := NewRegularPolygon(vec2.V{X: 0, Y: 0}, 10, 4, true, 0.1)
	b.integrate(1)
	if !vec2.Aeq(b.rotation, 0.1) {
		t.Errorf("expected rotation 0.1, got %v", b.rotation)
	}
}

func TestApplyGravitySkipsNonGravityBodies(t *testing.T) {
	b := NewDisk(vec2.V{X: 0, Y: 0}, 1, false)
	b.SetGravityAffected(false)
	b.applyGravity(vec2.V{X: 0, Y: 1000})
	if !b.acceleration.AeqZ() {
		t.Errorf("expected zero acceleration for a gravity-exempt body, got %v", b.acceleration)
	}
}

func TestApplyGravitySkipsAnchored(t *testing.T) {
	b := NewDisk(vec2.V{X: 0, Y: 0}, 1, true)
	b.applyGravity(vec2.V{X: 0, Y: 1000})
	if !b.acceleration.AeqZ() {
		t.Errorf("expected zero acceleration for an anchored body, got %v", b.acceleration)
	}
}
