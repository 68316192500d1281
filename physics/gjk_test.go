// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/vu/math/vec2"
)

func unitSquare(center vec2.V) *Body {
	return NewPolygon(center, []vec2.V{
		{X: -0.5, Y: -0.5},
		{X: 0.5, Y: -0.5},
		{X: 0.5, Y: 0.5},
		{X: -0.5, Y: 0.5},
	}, true, 0)
}

func TestGJKOverlappingSquares(t *testing.T) {
	a := unitSquare(vec2.V{X: 0, Y: 0})
	b := unitSquare(vec2.V{X: 0.5, Y: 0.5})
	if hit, _ := gjkIntersects(a, b); !hit {
		t.Error("expected overlapping unit squares to collide")
	}
}

func TestGJKSeparatedSquares(t *testing.T) {
	a := unitSquare(vec2.V{X: 0, Y: 0})
	b := unitSquare(vec2.V{X: 1.5, Y: 0})
	if hit, _ := gjkIntersects(a, b); hit {
		t.Error("expected separated unit squares to not collide")
	}
}

func TestGJKTerminatesWithinIterationCap(t *testing.T) {
	a := unitSquare(vec2.V{X: 0, Y: 0})
	b := unitSquare(vec2.V{X: 0, Y: 0})
	// Coincident centers: the d.AeqZ() fallback must still terminate.
	if hit, _ := gjkIntersects(a, b); !hit {
		t.Error("expected coincident squares to collide")
	}
}
