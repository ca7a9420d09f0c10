package model

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrInvariantViolated reports that a snapshot's ranks no longer form
	// a permutation of 1..N. It signals a programming defect, not a
	// recoverable condition.
	ErrInvariantViolated = errors.New("rank permutation invariant violated")
)
