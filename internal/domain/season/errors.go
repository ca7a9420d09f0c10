package season

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrInvalidConfig marks configuration problems caught before any
	// simulation work begins.
	ErrInvalidConfig = errors.New("invalid season configuration")
)
