package grid

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CellFactory builds the payload for one cell. It is called exactly once per
// coordinate while the grid is being constructed.
type CellFactory[T any] func(g *SpatialGrid[T], c Coordinate) T

// SpatialGrid is a dense width×height array of payloads of type T with a
// uniform cell size and a world-space origin. Cells are stored row-major:
// index = z*width + x. The grid is built once (typically at level load) and
// only its payloads change afterwards.
type SpatialGrid[T any] struct {
	width, height int
	cellSize      float64
	origin        mgl64.Vec3
	anchor        Anchor
	cells         []T
}

// New constructs a SpatialGrid and fills it through factory, visiting x in the
// outer loop and z in the inner loop.
// Returns ErrConfiguration if width or height ≤ 0, cellSize is not a positive
// finite number, or factory is nil.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, cellSize float64, origin mgl64.Vec3, factory CellFactory[T], opts ...Option) (*SpatialGrid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d must be positive", ErrConfiguration, width, height)
	}
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: cell size %v must be positive and finite", ErrConfiguration, cellSize)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: nil cell factory", ErrConfiguration)
	}
	cfg := gridOptions{anchor: AnchorCorner}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &SpatialGrid[T]{
		width:    width,
		height:   height,
		cellSize: cellSize,
		origin:   origin,
		anchor:   cfg.anchor,
		cells:    make([]T, width*height),
	}
	for x := 0; x < width; x++ {
		for z := 0; z < height; z++ {
			c := Coordinate{X: x, Z: z}
			g.cells[g.index(c)] = factory(g, c)
		}
	}

	return g, nil
}

// Width returns the number of cells along x.
func (g *SpatialGrid[T]) Width() int { return g.width }

// Height returns the number of cells along z.
func (g *SpatialGrid[T]) Height() int { return g.height }

// CellSize returns the world-space edge length of a cell.
func (g *SpatialGrid[T]) CellSize() float64 { return g.cellSize }

// Origin returns the world-space offset of cell (0, 0).
func (g *SpatialGrid[T]) Origin() mgl64.Vec3 { return g.origin }

// Anchor returns the GridToWorld convention fixed at construction.
func (g *SpatialGrid[T]) Anchor() Anchor { return g.anchor }

// Len returns width×height.
func (g *SpatialGrid[T]) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *SpatialGrid[T]) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Z >= 0 && c.Z < g.height
}

// Cell returns a copy of the payload at c, or ErrOutOfBounds.
func (g *SpatialGrid[T]) Cell(c Coordinate) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, g.outOfBounds(c)
	}
	return g.cells[g.index(c)], nil
}

// SetCell replaces the payload at c, or returns ErrOutOfBounds.
func (g *SpatialGrid[T]) SetCell(c Coordinate, v T) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	g.cells[g.index(c)] = v
	return nil
}

// Ref returns a pointer to the payload stored at c. The pointer aliases the
// grid's backing array and stays valid for the grid's lifetime.
func (g *SpatialGrid[T]) Ref(c Coordinate) (*T, error) {
	if !g.InBounds(c) {
		return nil, g.outOfBounds(c)
	}
	return &g.cells[g.index(c)], nil
}

// Index maps c to its row-major index. ok is false when c is out of bounds.
func (g *SpatialGrid[T]) Index(c Coordinate) (idx int, ok bool) {
	if !g.InBounds(c) {
		return -1, false
	}
	return g.index(c), true
}

// CoordinateAt converts a row-major index back to its coordinate.
func (g *SpatialGrid[T]) CoordinateAt(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Z: idx / g.width}
}

// At returns a pointer to the payload at row-major index idx.
// It panics if idx is outside [0, Len()), like a slice access.
func (g *SpatialGrid[T]) At(idx int) *T {
	return &g.cells[idx]
}

// ForEach calls fn for every cell, x outer and z inner.
func (g *SpatialGrid[T]) ForEach(fn func(c Coordinate, cell *T)) {
	for x := 0; x < g.width; x++ {
		for z := 0; z < g.height; z++ {
			c := Coordinate{X: x, Z: z}
			fn(c, &g.cells[g.index(c)])
		}
	}
}

// Neighbors returns the in-bounds neighbours of c for the given connectivity,
// in Offsets(conn) order.
func (g *SpatialGrid[T]) Neighbors(c Coordinate, conn Connectivity) []Coordinate {
	offsets := Offsets(conn)
	out := make([]Coordinate, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// WorldToGrid converts a world-space position to the coordinate of the cell
// containing it. The y component is ignored. The result may be out of bounds.
func (g *SpatialGrid[T]) WorldToGrid(p mgl64.Vec3) Coordinate {
	rel := p.Sub(g.origin)
	return Coordinate{
		X: int(math.Floor(rel.X() / g.cellSize)),
		Z: int(math.Floor(rel.Z() / g.cellSize)),
	}
}

// GridToWorld returns the reference point of cell c: its minimum corner, or
// its centre when the grid was built with AnchorCenter. y is the origin's y.
// GridToWorld(WorldToGrid(p)) is the reference point of p's cell, not p.
func (g *SpatialGrid[T]) GridToWorld(c Coordinate) mgl64.Vec3 {
	x := float64(c.X) * g.cellSize
	z := float64(c.Z) * g.cellSize
	if g.anchor == AnchorCenter {
		x += g.cellSize / 2
		z += g.cellSize / 2
	}
	return g.origin.Add(mgl64.Vec3{x, 0, z})
}

func (g *SpatialGrid[T]) index(c Coordinate) int {
	return c.Z*g.width + c.X
}

func (g *SpatialGrid[T]) outOfBounds(c Coordinate) error {
	return fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, c, g.width, g.height)
}
