package sim

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrInvalidBatch  = errors.New("invalid batch configuration")
	ErrEnqueueFailed = errors.New("failed to enqueue run request")
)
