package pathfinding

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/tacgrid/grid"
)

// Path is the result of a successful search.
type Path struct {
	// Coordinates lists the cells from start to end inclusive.
	Coordinates []grid.Coordinate
	// Cost is the end cell's fCost, equal to the accumulated step cost.
	Cost int
}

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p.Coordinates) }

// Engine runs A* searches over a grid of PathCells it exclusively owns.
// Create one per level with NewEngine, call Setup once the level geometry is
// known, and Unload when the level goes away.
type Engine struct {
	opts   Options
	log    *slog.Logger
	prober ObstacleProber

	cells  *grid.SpatialGrid[PathCell]
	closed []bool
	open   openSet

	searching bool
}

// NewEngine returns an engine that discovers obstacles through prober.
// prober may be nil, in which case Setup leaves every cell walkable.
func NewEngine(prober ObstacleProber, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		opts:   cfg,
		log:    cfg.Logger,
		prober: prober,
	}
}

// Setup builds a width×height grid of PathCells and probes every cell once
// for static obstacles, marking hits unwalkable. Any previous grid is
// replaced only if construction succeeds.
// Returns grid.ErrConfiguration for invalid dimensions or cell size.
// Complexity: O(W×H) probes.
func (e *Engine) Setup(width, height int, cellSize float64, origin mgl64.Vec3) error {
	if e.searching {
		return ErrReentrantSearch
	}
	cells, err := grid.New(width, height, cellSize, origin, newPathCell, grid.WithAnchor(e.opts.Anchor))
	if err != nil {
		return fmt.Errorf("pathfinding: setup: %w", err)
	}

	blocked := 0
	if e.prober == nil {
		e.log.Warn("no obstacle prober; all cells walkable", "width", width, "height", height)
	} else {
		cells.ForEach(func(c grid.Coordinate, cell *PathCell) {
			pos := cells.GridToWorld(c)
			if e.prober.ProbeObstacle(pos, e.opts.ProbeDistance, e.opts.ObstacleLayers) {
				cell.SetWalkable(false)
				blocked++
			}
		})
	}

	e.cells = cells
	e.closed = make([]bool, cells.Len())
	e.open = newOpenSet(e.opts.OpenSet, cells.Len(), func(idx int) int {
		return cells.At(idx).fCost
	})
	e.log.Info("pathfinding grid ready",
		"width", width, "height", height, "cell_size", cellSize,
		"blocked", blocked, "open_set", e.opts.OpenSet.String())

	return nil
}

func newPathCell(_ *grid.SpatialGrid[PathCell], c grid.Coordinate) PathCell {
	return NewPathCell(c)
}

// Unload releases the grid. Later calls fail with ErrNotSetup until Setup runs again.
func (e *Engine) Unload() {
	e.cells = nil
	e.closed = nil
	e.open = nil
}

// Ready reports whether Setup has completed.
func (e *Engine) Ready() bool { return e.cells != nil }

// Width returns the grid width, or 0 before Setup.
func (e *Engine) Width() int {
	if e.cells == nil {
		return 0
	}
	return e.cells.Width()
}

// Height returns the grid height, or 0 before Setup.
func (e *Engine) Height() int {
	if e.cells == nil {
		return 0
	}
	return e.cells.Height()
}

// InBounds reports whether c addresses a cell of the engine's grid.
func (e *Engine) InBounds(c grid.Coordinate) bool {
	return e.cells != nil && e.cells.InBounds(c)
}

// WorldToGrid converts a world position using the engine's grid geometry.
func (e *Engine) WorldToGrid(p mgl64.Vec3) (grid.Coordinate, error) {
	if e.cells == nil {
		return grid.Coordinate{}, ErrNotSetup
	}
	return e.cells.WorldToGrid(p), nil
}

// GridToWorld returns the reference point of c using the engine's grid geometry.
func (e *Engine) GridToWorld(c grid.Coordinate) (mgl64.Vec3, error) {
	if e.cells == nil {
		return mgl64.Vec3{}, ErrNotSetup
	}
	if !e.cells.InBounds(c) {
		return mgl64.Vec3{}, fmt.Errorf("%w: %s", grid.ErrOutOfBounds, c)
	}
	return e.cells.GridToWorld(c), nil
}

// Cell returns a copy of the cell at c as left by the last search.
func (e *Engine) Cell(c grid.Coordinate) (PathCell, error) {
	if e.cells == nil {
		return PathCell{}, ErrNotSetup
	}
	return e.cells.Cell(c)
}

// IsWalkable reports the walkability flag of c. No search is run.
func (e *Engine) IsWalkable(c grid.Coordinate) (bool, error) {
	if e.cells == nil {
		return false, ErrNotSetup
	}
	cell, err := e.cells.Ref(c)
	if err != nil {
		return false, err
	}
	return cell.walkable, nil
}

// SetWalkable changes the walkability of c, e.g. when a destructible
// obstacle is cleared. It is the only external mutation of PathCell state.
func (e *Engine) SetWalkable(c grid.Coordinate, walkable bool) error {
	if e.searching {
		return ErrReentrantSearch
	}
	if e.cells == nil {
		return ErrNotSetup
	}
	cell, err := e.cells.Ref(c)
	if err != nil {
		return err
	}
	cell.walkable = walkable
	return nil
}

// Reprobe asks the prober about c again, with the probe distance and layers
// Setup used, and sets its walkability from the answer. Call it for the cells
// of an obstacle that was removed from the world. Returns the new flag.
func (e *Engine) Reprobe(c grid.Coordinate) (bool, error) {
	if e.searching {
		return false, ErrReentrantSearch
	}
	if e.cells == nil {
		return false, ErrNotSetup
	}
	cell, err := e.cells.Ref(c)
	if err != nil {
		return false, err
	}
	cell.walkable = e.prober == nil ||
		!e.prober.ProbeObstacle(e.cells.GridToWorld(c), e.opts.ProbeDistance, e.opts.ObstacleLayers)
	return cell.walkable, nil
}

// HasPath reports whether FindPath(start, end) succeeds.
func (e *Engine) HasPath(start, end grid.Coordinate) (bool, error) {
	_, ok, err := e.FindPath(start, end)
	return ok, err
}

// GetPathLength returns the cost of the path from start to end, or 0 when
// there is none. A zero is also returned for start == end; use HasPath to
// tell the two apart.
func (e *Engine) GetPathLength(start, end grid.Coordinate) (int, error) {
	p, ok, err := e.FindPath(start, end)
	if err != nil || !ok {
		return 0, err
	}
	return p.Cost, nil
}

// FindPath runs A* from start to end.
//
// Returns:
//
//   - path, true, nil  – the cheapest path, start and end inclusive.
//   - Path{}, false, nil – no path exists (a normal outcome).
//   - Path{}, false, err – grid.ErrOutOfBounds, ErrNotSetup or ErrReentrantSearch.
//
// Steps:
//  1. Validate both coordinates before touching any state.
//  2. Reset every cell: gCost=Unreached, hCost=0, fCost, predecessor cleared.
//  3. Seed start with gCost=0 and hCost=Distance(start, end).
//  4. Repeatedly expand the open cell with the lowest fCost until end is selected
//     or the open set empties.
//  5. Rebuild the path from end along predecessors and reverse it.
//
// Complexity: O(W×H) for the reset plus O(N·k) for N expansions, where k is
// the open-set size (linear) or log k (heap).
func (e *Engine) FindPath(start, end grid.Coordinate) (Path, bool, error) {
	if e.searching {
		return Path{}, false, ErrReentrantSearch
	}
	if e.cells == nil {
		return Path{}, false, ErrNotSetup
	}

	// 1) Validate coordinates.
	startIdx, ok := e.cells.Index(start)
	if !ok {
		return Path{}, false, fmt.Errorf("%w: start %s", grid.ErrOutOfBounds, start)
	}
	endIdx, ok := e.cells.Index(end)
	if !ok {
		return Path{}, false, fmt.Errorf("%w: end %s", grid.ErrOutOfBounds, end)
	}

	e.searching = true
	defer func() { e.searching = false }()

	// 2) Full reset.
	e.reset()

	// An unwalkable destination can never be selected; skip the search.
	if !e.cells.At(endIdx).walkable {
		e.log.Debug("path search skipped: destination blocked", "start", start, "end", end)
		return Path{}, false, nil
	}

	// 3) Seed the start cell.
	s := e.cells.At(startIdx)
	s.gCost = 0
	s.hCost = Distance(start, end)
	s.CalculateFCost()
	e.open.push(startIdx)

	// 4) Main loop.
	expanded := 0
	for e.open.len() > 0 {
		curIdx := e.open.popLowest()
		if curIdx == endIdx {
			path := e.reconstruct(endIdx)
			e.log.Debug("path found", "start", start, "end", end,
				"cost", path.Cost, "length", path.Len(), "expanded", expanded)
			return path, true, nil
		}

		e.closed[curIdx] = true
		expanded++
		cur := e.cells.At(curIdx)
		if e.opts.OnExpand != nil {
			e.opts.OnExpand(cur.coordinate)
		}
		e.relax(cur, end)
	}

	// 5) Open set exhausted.
	e.log.Debug("no path", "start", start, "end", end, "expanded", expanded)
	return Path{}, false, nil
}

// reset restores every cell's search state and empties both sets.
func (e *Engine) reset() {
	for i := 0; i < e.cells.Len(); i++ {
		c := e.cells.At(i)
		c.gCost = Unreached
		c.hCost = 0
		c.CalculateFCost()
		c.ResetPredecessor()
		e.closed[i] = false
	}
	e.open.reset()
}

// relax examines the eight neighbours of cur in search order and improves
// any whose cost through cur is strictly lower.
func (e *Engine) relax(cur *PathCell, end grid.Coordinate) {
	for _, d := range grid.Offsets(grid.Conn8) {
		n := cur.coordinate.Add(d)
		nIdx, ok := e.cells.Index(n)
		if !ok || e.closed[nIdx] {
			continue
		}
		nb := e.cells.At(nIdx)
		if !nb.walkable {
			// blocked cells are closed on first sight and never expanded
			e.closed[nIdx] = true
			continue
		}

		tentative := cur.gCost + Distance(cur.coordinate, n)
		if tentative >= nb.gCost {
			continue
		}
		nb.SetPredecessor(cur.coordinate)
		nb.gCost = tentative
		nb.hCost = Distance(n, end)
		nb.CalculateFCost()

		if e.open.contains(nIdx) {
			e.open.fix(nIdx)
		} else {
			e.open.push(nIdx)
		}
	}
}

// reconstruct follows predecessors from the end cell back to the start.
func (e *Engine) reconstruct(endIdx int) Path {
	endCell := e.cells.At(endIdx)
	coords := []grid.Coordinate{endCell.coordinate}
	cur := endCell
	// the chain is a tree rooted at start, so it is at most Len() long
	for steps := 0; steps < e.cells.Len(); steps++ {
		prev, ok := cur.Predecessor()
		if !ok {
			break
		}
		coords = append(coords, prev)
		cur, _ = e.cells.Ref(prev)
	}
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}

	return Path{Coordinates: coords, Cost: endCell.fCost}
}
