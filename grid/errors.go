package grid

import "errors"

var (
	// ErrConfiguration indicates invalid construction parameters.
	ErrConfiguration = errors.New("grid: invalid grid configuration")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
