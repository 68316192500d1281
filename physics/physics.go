// Copyright © 2024 Galvanized Logic Inc.

// Package physics is a real-time 2D rigid-body simulation core. It
// integrates a heterogeneous population of disks, segments, and convex
// polygons under a constant global acceleration, detects pairwise
// contacts, and resolves them by positional correction.
//
// Package physics is a focused 2D spin-off of the vu (virtual
// universe) 3D engine's physics package, trading velocity/impulse
// dynamics and a full 3D collision manifold for Verlet integration and
// a GJK+EPA narrow phase sized for an interactive 2D sandbox.
//
// The package exposes a Solver driven entirely by the caller: build
// bodies with NewDisk, NewSegment, or NewPolygon, add them with
// AddBody, and call Step(dt) once per frame. The core never performs
// I/O, never spawns goroutines, and never allocates or frees bodies on
// its own - it only mutates what the caller hands it.
//
//	vu/physics          : raw-physics/src/physics (ancestor, 3D/impulse)
//	body.go, shape.go    : ancestor's entity.cpp/entity.h, narrowed to 2D
//	gjk.go, epa.go        : ancestor's gjk.cpp/epa.cpp, narrowed to 2D
//	support.go           : ancestor's support.cpp/support.h
//	solver.go            : ancestor's pbd.cpp, reworked into a sub-stepping orchestrator
package physics
