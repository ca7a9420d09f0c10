package policy

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrUnknownPolicy = errors.New("unknown policy")
	ErrInvalidRule   = errors.New("invalid rule")
)
