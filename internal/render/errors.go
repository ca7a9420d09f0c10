package render

import "errors"

// Sentinel error kinds for this package.
var (
	ErrNothingToRender = errors.New("nothing to render")
)
