// Copyright © 2024 Galvanized Logic Inc.

package physics

import "errors"

// errors.go lists the recoverable caller-misuse errors the solver can
// return. None of them leave the solver's body collection mutated.

var (
	// ErrUnknownBody is returned by RemoveBody and SetGravityAffected
	// when the given id was never added, or was already removed.
	ErrUnknownBody = errors.New("physics: unknown body id")

	// ErrNonPositiveStep is returned by Step when dt is zero or negative.
	ErrNonPositiveStep = errors.New("physics: step requires a positive dt")
)
