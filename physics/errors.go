package physics

import "errors"

// Sentinel errors returned by World and Layers.
var (
	// ErrUnknownLayer indicates a layer name that was never registered.
	ErrUnknownLayer = errors.New("physics: unknown layer")

	// ErrTooManyLayers indicates more distinct layers than MaxLayers.
	ErrTooManyLayers = errors.New("physics: too many layers")

	// ErrInvalidObstacle indicates an obstacle with an empty footprint or Top < Bottom.
	ErrInvalidObstacle = errors.New("physics: invalid obstacle")

	// ErrUnknownObstacle indicates an ObstacleID that is not in the world.
	ErrUnknownObstacle = errors.New("physics: unknown obstacle")
)
