// Package grid provides the spatial grid used by the tactics layer: an
// immutable integer Coordinate and a dense, generic SpatialGrid[T] that maps
// coordinates to cell payloads and converts between world space and grid space.
//
// What:
//
//   - Coordinate is a comparable (x, z) value with component-wise arithmetic.
//   - SpatialGrid[T] stores width×height payloads in one row-major slice and
//     builds each payload once through a caller-supplied factory.
//   - WorldToGrid floors (worldPos - origin) / cellSize on the x and z axes;
//     GridToWorld returns the cell's reference point (corner or centre).
//   - Regions labels connected groups of cells that satisfy a predicate.
//
// Why:
//
//   - Tactics maps: unit placement, movement range, line-of-sight probing.
//   - Pathfinding: the engine keeps its per-cell search state in a
//     SpatialGrid[PathCell] sized to match the gameplay grid.
//
// Complexity:
//
//   - New:           O(W×H) time and memory, one factory call per cell.
//   - Cell/Ref/Set:  O(1).
//   - Regions:       O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbours).
//
// Errors:
//
//   - ErrConfiguration: non-positive dimensions, invalid cell size or nil factory.
//   - ErrOutOfBounds:   a coordinate outside [0,width)×[0,height).
//
// Out-of-bounds access is never wrapped or clamped.
package grid
