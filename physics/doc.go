// Package physics is the terrain query collaborator of the pathfinding engine.
//
// What:
//
//	A World holds the static obstacles of a level as axis-aligned boxes in a
//	Chipmunk space (github.com/jakecoffman/cp). Each box has a footprint in the
//	x/z plane, a vertical extent [Bottom, Top] and one named layer.
//
// Why:
//
//	pathfinding.Engine discovers blocked cells at Setup by asking an
//	ObstacleProber whether anything stands at each cell's reference point.
//	*World answers that question with a broad-phase BBQuery followed by a
//	PointQuery on each candidate, so large levels stay cheap to probe.
//
// Layers:
//
//	Layer names map to single bits (Layers.Mask). A probe only reports shapes
//	whose layer bit is in the requested mask, through cp's shape filters.
//
// Footprints are half-open on their max edges: a box spanning [4, 6) in x
// covers the cell whose reference point is x=4 but not the one at x=6.
//
// Errors:
//
//   - ErrUnknownLayer     layer name not registered.
//   - ErrTooManyLayers    more layers than bits in a LayerMask category.
//   - ErrInvalidObstacle  empty footprint or inverted vertical extent.
//   - ErrUnknownObstacle  ObstacleID not present in the world.
package physics
