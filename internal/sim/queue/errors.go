package queue

import "errors"

// Sentinel error kinds for this package.
var (
	ErrAlreadyClosed = errors.New("queue already closed")
)
