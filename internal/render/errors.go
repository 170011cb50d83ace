package render

import "errors"

// Domain errors for portrait rendering.
var (
	// ErrEmptyGrid indicates a grid with no samples in one or both axes.
	ErrEmptyGrid = errors.New("render: empty phase-space grid")

	// ErrDegenerateGrid indicates a grid whose position or momentum
	// extent collapses to a single value.
	ErrDegenerateGrid = errors.New("render: grid extent is zero")

	// ErrBadDensity indicates a non-positive streamline density.
	ErrBadDensity = errors.New("render: density must be positive")

	// ErrBadDPI indicates a non-positive output resolution.
	ErrBadDPI = errors.New("render: dpi must be positive")
)
