package stats

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrNoSnapshots   = errors.New("no snapshots to aggregate")
	ErrInvalidWindow = errors.New("invalid top window")
	ErrNoRuns        = errors.New("no runs to average")
	ErrShapeMismatch = errors.New("series length mismatch")
)
