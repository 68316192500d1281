// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"log/slog"
	"time"

	"github.com/gazed/vu/math/vec2"
)

// solver.go is the orchestrator: it owns the body collection, sub-
// steps the timestep, dispatches each pair to its resolver, and
// advances every body's Verlet integration. Nothing outside this file
// mutates the body collection's membership.

// Solver runs the solver pipeline over a set of bodies. It is single-
// threaded and cooperative: Step runs to completion on the caller's
// goroutine and never suspends or performs I/O.
type Solver struct {
	gravity  vec2.V
	substeps uint32
	epaOpts  epaOptions
	scale    float64

	order  []BodyID // insertion order, for deterministic pair visitation.
	bodies map[BodyID]*Body

	perf perfCounters
	log  *slog.Logger
}

// NewSolver creates a solver with the given gravity vector and number
// of sub-steps per Step call (spec default: 8).
func NewSolver(gravity vec2.V, substeps uint32) *Solver {
	return &Solver{
		gravity:  gravity,
		substeps: substeps,
		epaOpts:  epaOptions{epsilon: epaEpsilon, maxIters: epaMaxIters},
		scale:    0.05,
		bodies:   make(map[BodyID]*Body),
		log:      slog.Default(),
	}
}

// NewSolverFromConfig creates a solver from a fully-populated Config,
// exposing the EPA and correction-scale tunables that NewSolver
// leaves at their spec defaults.
func NewSolverFromConfig(cfg Config) *Solver {
	s := NewSolver(cfg.Gravity, cfg.Substeps)
	s.epaOpts = epaOptions{epsilon: cfg.EPAEpsilon, maxIters: cfg.EPAMaxIters}
	s.scale = cfg.PolygonCorrectionScale
	return s
}

// AddBody registers b with the solver and returns its id. Bodies are
// visited in insertion order by every later pass.
func (s *Solver) AddBody(b *Body) BodyID {
	s.bodies[b.id] = b
	s.order = append(s.order, b.id)
	return b.id
}

// RemoveBody unregisters the body with the given id.
func (s *Solver) RemoveBody(id BodyID) error {
	if _, ok := s.bodies[id]; !ok {
		return ErrUnknownBody
	}
	delete(s.bodies, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetGravityAffected toggles whether gravity applies to the body with
// the given id.
func (s *Solver) SetGravityAffected(id BodyID, affected bool) error {
	b, ok := s.bodies[id]
	if !ok {
		return ErrUnknownBody
	}
	b.SetGravityAffected(affected)
	return nil
}

// Body looks up a body by id for callers that need more than the
// read-only view IterBodies provides, such as tests asserting exact
// position. Returns nil if id is unknown.
func (s *Solver) Body(id BodyID) *Body { return s.bodies[id] }

// IterBodies returns the current bodies in deterministic insertion
// order. The slice is a read-only view: mutating the bodies it points
// to outside of Step is the caller's responsibility to avoid.
func (s *Solver) IterBodies() []*Body {
	out := make([]*Body, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.bodies[id])
	}
	return out
}

// Step advances the simulation by dt, internally subdivided into
// s.substeps sub-steps of dt/substeps each: apply gravity, resolve
// every pair twice (once as (A,B), once as (B,A)), then integrate. Collision handlers are
// symmetric (each applies half-correction to whichever side), so the
// double ordered-pair visit yields one full correction per pair per
// sub-step.
func (s *Solver) Step(dt float64) error {
	if dt <= 0 {
		return ErrNonPositiveStep
	}
	start := time.Now()
	dtSub := dt / float64(s.substeps)

	for i := uint32(0); i < s.substeps; i++ {
		for _, id := range s.order {
			s.bodies[id].applyGravity(s.gravity)
		}
		s.solveCollisions()
		for _, id := range s.order {
			s.bodies[id].integrate(dtSub)
		}
	}
	s.perf.step.push(msSince(start))
	return nil
}

// solveCollisions visits every ordered pair (A,B) and (B,A), in
// insertion order, dispatching each to its resolver by shape kind.
func (s *Solver) solveCollisions() {
	broadStart := time.Now()
	var narrowTotal time.Duration
	for _, idA := range s.order {
		for _, idB := range s.order {
			if idA == idB {
				continue
			}
			a, b := s.bodies[idA], s.bodies[idB]
			if broadReject(a, b) {
				continue
			}
			narrowStart := time.Now()
			s.resolve(a, b)
			narrowTotal += time.Since(narrowStart)
		}
	}
	elapsed := time.Since(broadStart)
	s.perf.narrowPhase.push(msDuration(narrowTotal))
	s.perf.broadPhase.push(msDuration(elapsed - narrowTotal))
}

// msSince returns the milliseconds elapsed since start.
func msSince(start time.Time) float64 { return msDuration(time.Since(start)) }

// msDuration converts d to fractional milliseconds.
func msDuration(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

// resolve dispatches one ordered pair to its resolver by shape kind.
func (s *Solver) resolve(a, b *Body) {
	switch {
	case a.kind == Disk && b.kind == Disk:
		resolveDiskDisk(a, b)
	case a.kind == Segment && b.kind == Disk:
		resolveSegmentDisk(a, b)
	case a.kind == Disk && b.kind == Segment:
		resolveSegmentDisk(b, a)
	case a.kind == Polygon || b.kind == Polygon:
		_, converged := resolvePolygon(a, b, s.epaOpts, s.scale)
		if !converged {
			s.perf.epaNonConverged++
			s.log.Debug("epa did not converge within iteration cap", "a", a.id, "b", b.id)
		}
	}
}
