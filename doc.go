// Package tacgrid is the grid and pathfinding layer of a turn-based tactics
// game: a spatial grid over the level, an A* engine that prices movement over
// it, and the tooling to inspect both.
//
// 🚀 What is in tacgrid?
//
//	• grid/        Coordinate, the generic SpatialGrid[T], world↔grid conversion, region labelling
//	• pathfinding/ the A* Engine: Setup, FindPath, HasPath, GetPathLength, walkability edits
//	• physics/     static obstacles in a chipmunk (jakecoffman/cp) space; the engine's ObstacleProber
//	• level/       YAML level documents: grid geometry, obstacles, units
//	• actionrange/ move, shoot and melee target queries built on the engine
//	• config/      viper + pflag configuration for the tools
//	• logging/     slog logger construction
//	• debugview/   tcell grid viewer with fsnotify hot reload (cmd/gridview)
//
// ✨ Guarantees
//
//   - Deterministic: identical inputs give identical paths, tie-breaks included.
//   - Explicit: one Engine per level, no package state, errors matchable with errors.Is.
//   - Synchronous: a search runs to completion on the caller's goroutine.
//
// Quick start:
//
//	world, _, _ := doc.BuildWorld()
//	geo := doc.Geometry()
//	e := pathfinding.NewEngine(world)
//	_ = e.Setup(geo.Width, geo.Height, geo.CellSize, geo.Origin)
//	path, ok, err := e.FindPath(grid.C(0, 0), grid.C(7, 3))
package tacgrid
