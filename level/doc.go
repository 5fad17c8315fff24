// Package level reads tactics level documents: the grid geometry handed to
// pathfinding.Engine.Setup, the static obstacles that populate a
// physics.World, and the starting positions of units.
//
// Documents are YAML (gopkg.in/yaml.v3) and decoded strictly: unknown keys
// are errors. Parse applies defaults and validates; every problem is reported
// as ErrInvalidDocument wrapped with the offending field.
//
// Coordinates in a document follow the engine's convention: obstacle
// footprints are world-space [x, z] pairs, unit positions are grid cells.
package level
