package render

import "errors"

// Sentinel kinds for rendering errors.
var (
	ErrWrite = errors.New("report write failed")
)
