package chartdata

import "errors"

// Common errors returned by series operations and algorithms.
var (
	// ErrSeriesFull indicates a write would exceed a fixed-capacity container.
	// Writes are never silently truncated.
	ErrSeriesFull = errors.New("series capacity exceeded")

	// ErrEmptySeries indicates an operation that requires data received none.
	ErrEmptySeries = errors.New("series is empty")

	// ErrInsufficientData indicates fewer input points than the operation's minimum.
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid configuration")
)
