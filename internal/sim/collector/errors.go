package collector

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidRunCount = errors.New("invalid run count")
	ErrRunOutOfRange   = errors.New("run index out of range")
	ErrDuplicateRun    = errors.New("run already collected")
	ErrIncomplete      = errors.New("batch incomplete")
)
