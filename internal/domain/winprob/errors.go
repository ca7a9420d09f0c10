package winprob

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidSigma = errors.New("sigma must be positive")
)
