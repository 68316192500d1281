// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"github.com/google/uuid"

	"github.com/gazed/vu/math/vec2"
)

// BodyID uniquely identifies a body added to a Solver. IDs are
// generated once, at AddBody time, and stay stable for the body's
// lifetime regardless of insertion or removal order elsewhere.
type BodyID uuid.UUID

// String renders the id the way log lines and test failures want it.
func (id BodyID) String() string { return uuid.UUID(id).String() }

// Body is a single rigid body: a Disk, a Segment, or a Polygon. The
// Kind tag picks out which of the variant-specific fields below are
// meaningful; common kinematic state (position, lastPosition,
// acceleration, rotation) applies to every variant.
type Body struct {
	id   BodyID
	kind Kind

	position     vec2.V
	lastPosition vec2.V
	acceleration vec2.V

	rotation float64
	motor    float64 // radians added to rotation every sub-step; zero for non-spinning bodies.

	anchored        bool // anchored bodies never move: integration and correction skip them.
	gravityAffected bool

	radius float64 // bounding-circle radius, used by the broad phase regardless of Kind.

	diskRadius float64 // Disk only.

	pointsRel []vec2.V // Segment/Polygon only: rest-pose offsets from position, fixed at construction.
	points    []vec2.V // Segment/Polygon only: rotate(pointsRel[i], rotation) + position, refreshed every step.

	surface string // opaque caller tag (material name, render hint); physics never interprets it.
}

// newBody allocates the common Body state shared by every constructor.
func newBody(kind Kind, position vec2.V, anchored bool) *Body {
	return &Body{
		id:              BodyID(uuid.New()),
		kind:            kind,
		position:        position,
		lastPosition:    position,
		anchored:        anchored,
		gravityAffected: !anchored,
	}
}

// ID returns the body's stable identifier.
func (b *Body) ID() BodyID { return b.id }

// Kind returns which shape variant b is.
func (b *Body) Kind() Kind { return b.kind }

// Position returns the body's current center of mass.
func (b *Body) Position() vec2.V { return b.position }

// Rotation returns the body's current orientation in radians.
func (b *Body) Rotation() float64 { return b.rotation }

// Radius returns the bounding-circle radius used by the broad phase.
func (b *Body) Radius() float64 { return b.radius }

// Anchored reports whether b is fixed: integration and positional
// correction never move an anchored body.
func (b *Body) Anchored() bool { return b.anchored }

// GravityAffected reports whether gravity is applied to b each step.
func (b *Body) GravityAffected() bool { return b.gravityAffected }

// SetGravityAffected toggles whether gravity is applied to b.
func (b *Body) SetGravityAffected(affected bool) { b.gravityAffected = affected }

// Surface returns the caller-supplied opaque surface tag.
func (b *Body) Surface() string { return b.surface }

// SetSurface sets the caller-supplied opaque surface tag.
func (b *Body) SetSurface(surface string) { b.surface = surface }

// DiskRadius returns the physical radius of a Disk body. Meaningless
// for other Kinds.
func (b *Body) DiskRadius() float64 { return b.diskRadius }

// worldPoints returns the current world-space vertices of a Segment
// or Polygon body. Meaningless for Disk.
func (b *Body) worldPoints() []vec2.V { return b.points }

// Points exposes the current world-space vertices of a Segment or
// Polygon body to callers (rendering, tests).
func (b *Body) Points() []vec2.V { return b.points }

// refreshPoints derives world-space vertices from the fixed rest-pose
// offsets: points[i] = rotate(pointsRel[i], rotation) + position. This
// is always recomputed from pointsRel rather than incrementally
// rotating the previous points, which is what keeps repeated rotation
// from drifting a polygon's edge lengths over time.
func (b *Body) refreshPoints() {
	if b.pointsRel == nil {
		return
	}
	if b.points == nil || len(b.points) != len(b.pointsRel) {
		b.points = make([]vec2.V, len(b.pointsRel))
	}
	for i, rel := range b.pointsRel {
		b.points[i] = rel.Rotate(b.rotation).Add(b.position)
	}
}
