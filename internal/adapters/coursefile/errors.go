package coursefile

import "errors"

// Sentinel kinds for course file errors.
var (
	ErrReadCourse    = errors.New("read course file failed")
	ErrInvalidCourse = errors.New("invalid course definition")
)
