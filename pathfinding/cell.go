package pathfinding

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tacgrid/grid"
)

// Unreached is the gCost of a cell no search has reached yet.
const Unreached = math.MaxInt

// PathCell is the per-cell search record stored in the engine's grid.
// The predecessor is a back-index (a coordinate in the same grid), never a
// pointer, so the chain is a tree rooted at the search start that is dropped
// by ResetPredecessor without ownership concerns.
type PathCell struct {
	coordinate     grid.Coordinate
	gCost          int
	hCost          int
	fCost          int
	predecessor    grid.Coordinate
	hasPredecessor bool
	walkable       bool
}

// NewPathCell returns a walkable cell at c with no search state.
func NewPathCell(c grid.Coordinate) PathCell {
	return PathCell{coordinate: c, walkable: true}
}

// Coordinate returns the cell's address.
func (p *PathCell) Coordinate() grid.Coordinate { return p.coordinate }

// GCost returns the accumulated cost from the search start.
func (p *PathCell) GCost() int { return p.gCost }

// SetGCost sets the accumulated cost from the search start.
func (p *PathCell) SetGCost(g int) { p.gCost = g }

// HCost returns the heuristic estimate to the search goal.
func (p *PathCell) HCost() int { return p.hCost }

// SetHCost sets the heuristic estimate to the search goal.
func (p *PathCell) SetHCost(h int) { p.hCost = h }

// FCost returns gCost+hCost as of the last CalculateFCost.
func (p *PathCell) FCost() int { return p.fCost }

// CalculateFCost recomputes fCost = gCost + hCost, saturating at Unreached.
func (p *PathCell) CalculateFCost() {
	if p.gCost > Unreached-p.hCost {
		p.fCost = Unreached
		return
	}
	p.fCost = p.gCost + p.hCost
}

// Predecessor returns the cell this one was reached from in the last search.
func (p *PathCell) Predecessor() (grid.Coordinate, bool) {
	return p.predecessor, p.hasPredecessor
}

// SetPredecessor records the cell this one was reached from.
func (p *PathCell) SetPredecessor(c grid.Coordinate) {
	p.predecessor = c
	p.hasPredecessor = true
}

// ResetPredecessor clears the back-link.
func (p *PathCell) ResetPredecessor() {
	p.predecessor = grid.Coordinate{}
	p.hasPredecessor = false
}

// Walkable reports whether paths may pass through the cell.
func (p *PathCell) Walkable() bool { return p.walkable }

// SetWalkable marks the cell as traversable or blocked.
func (p *PathCell) SetWalkable(w bool) { p.walkable = w }

// String renders the debug label for the cell, e.g. "(2, 3) g=20 h=14 f=34".
// Unreached costs print as "-"; blocked cells are suffixed with " blocked".
func (p PathCell) String() string {
	s := fmt.Sprintf("%s g=%s h=%d f=%s", p.coordinate, costString(p.gCost), p.hCost, costString(p.fCost))
	if !p.walkable {
		s += " blocked"
	}
	return s
}

func costString(c int) string {
	if c == Unreached {
		return "-"
	}
	return fmt.Sprint(c)
}
