// Package pathfinding implements the A* engine every unit action queries for
// movement range, line-of-sight range and targeting.
//
// The engine owns a grid.SpatialGrid[PathCell] sized to match the level's
// gameplay grid. Setup builds that grid and asks an ObstacleProber once per
// cell whether static geometry occupies it; FindPath then runs A* over the
// 8-connected grid and returns the ordered coordinates plus the path cost.
//
// Cost model:
//
//   - Orthogonal step: MoveStraightCost (10).
//   - Diagonal step:   MoveDiagonalCost (14 ≈ 10·√2).
//   - Heuristic:       octile distance 14·min(dx,dz) + 10·|dx−dz|, admissible
//     and consistent for these step costs. The same function prices a single
//     step between adjacent cells.
//
// Search:
//
//   - Every call resets the whole grid first: O(W×H) before the search starts.
//     Do not call it for many agents every frame without budgeting for that.
//   - The open set returns the lowest fCost; ties go to the cell inserted first.
//     OpenSetLinear scans a slice, OpenSetHeap keeps a binary heap ordered by
//     (fCost, insertion sequence). Both yield identical paths.
//   - Unwalkable neighbours are closed on first sight and never expanded.
//   - An unwalkable destination is unreachable.
//
// Results and errors:
//
//   - No path is a normal outcome: FindPath reports ok == false, HasPath false,
//     GetPathLength 0. Call HasPath first if a zero length is ambiguous.
//   - grid.ErrOutOfBounds: a coordinate outside the grid (checked before any reset).
//   - grid.ErrConfiguration: bad Setup parameters.
//   - ErrNotSetup: the engine has no grid (Setup not called, or Unload called).
//   - ErrReentrantSearch: a search or walkability change was attempted from
//     inside a running search (for example from an OnExpand hook).
//
// Concurrency: an Engine is single-threaded. Searches run to completion on
// the caller's goroutine; callers serialise access.
package pathfinding
