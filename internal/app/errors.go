package service

import "errors"

// Sentinel kinds for evaluation errors. All are non-fatal: the caller
// surfaces a message and may retry with corrected input.
var (
	// ErrZeroTotalWeight means the category weights sum to zero or less;
	// no computation proceeds.
	ErrZeroTotalWeight = errors.New("total category weight is zero or negative")

	// ErrFinalNotFound means no category name matched the configured
	// final exam name.
	ErrFinalNotFound = errors.New("final exam category not found")

	// ErrDegenerateSolve means the required score could not be computed:
	// non-positive final weight at solve time, or a NaN/infinite result.
	ErrDegenerateSolve = errors.New("required final score cannot be computed")
)
