// Copyright © 2024 Galvanized Logic Inc.

package physics

import "github.com/gazed/vu/math/vec2"

// integrate.go advances one body forward by dt_sub using position-based
// Verlet integration: velocity is never stored directly, it is implicit
// in the difference between position and lastPosition.

// integrate applies one Verlet sub-step to b. Anchored bodies are left
// untouched entirely, including their rotation (unless a motor turns
// them - a motor still spins an anchored body in place).
func (b *Body) integrate(dtSub float64) {
	if !b.anchored {
		displacement := b.position.Sub(b.lastPosition)
		b.lastPosition = b.position
		b.position = b.position.Add(displacement).Add(b.acceleration.Scale(dtSub * dtSub))
	}
	b.acceleration = vec2.Zero

	if b.motor != 0 {
		b.rotation = vec2.WrapAngle(b.rotation + b.motor)
	}
	b.refreshPoints()
}

// applyGravity accumulates gravity into a free body's acceleration for
// this sub-step; the solver calls this once per sub-step before the
// collision pass.
func (b *Body) applyGravity(gravity vec2.V) {
	if b.gravityAffected && !b.anchored {
		b.acceleration = b.acceleration.Add(gravity)
	}
}
