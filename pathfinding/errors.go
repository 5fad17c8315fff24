package pathfinding

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrNotSetup indicates the engine has no grid: Setup was not called or Unload was.
	ErrNotSetup = errors.New("pathfinding: engine is not set up")

	// ErrReentrantSearch indicates a call that would interleave with a running search.
	ErrReentrantSearch = errors.New("pathfinding: re-entrant call during search")

	// ErrBadProbeDistance indicates a non-positive or non-finite probe distance.
	ErrBadProbeDistance = errors.New("pathfinding: probe distance must be positive and finite")

	// ErrUnknownOpenSet indicates an unrecognised open-set strategy name.
	ErrUnknownOpenSet = errors.New("pathfinding: unknown open set strategy")
)
