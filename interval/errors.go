package interval

import "errors"

// Sentinel errors for the interval package.
var (
	// ErrInvalidInterval indicates Low > High, or an empty interval
	// (Low == High with at least one exclusive bound).
	ErrInvalidInterval = errors.New("interval: low must be <= high, and a zero-width interval must be inclusive on both ends")
)
