package actionrange

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/pathfinding"
)

// Default ranges of the stock unit actions.
const (
	DefaultMoveDistance  = 4
	DefaultShootDistance = 7
	DefaultMeleeDistance = 1
)

// ErrNegativeRange indicates a negative action distance.
var ErrNegativeRange = errors.New("actionrange: negative range")

// PathQuerier is the part of *pathfinding.Engine that move ranges use.
type PathQuerier interface {
	IsWalkable(c grid.Coordinate) (bool, error)
	FindPath(start, end grid.Coordinate) (pathfinding.Path, bool, error)
}

// Occupancy reports whether a unit stands on a cell.
type Occupancy interface {
	Occupied(c grid.Coordinate) bool
}

// Bounds reports whether a cell exists.
type Bounds interface {
	InBounds(c grid.Coordinate) bool
}

// MoveTargets returns the cells the unit on from can move to: in bounds,
// not from itself, unoccupied, walkable, reachable, and within a path cost
// of maxMoveDistance straight steps.
func MoveTargets(q PathQuerier, occ Occupancy, bounds Bounds, from grid.Coordinate, maxMoveDistance int) ([]grid.Coordinate, error) {
	if maxMoveDistance < 0 {
		return nil, fmt.Errorf("%w: move %d", ErrNegativeRange, maxMoveDistance)
	}
	budget := maxMoveDistance * pathfinding.MoveStraightCost

	var out []grid.Coordinate
	for c := range square(from, maxMoveDistance) {
		if !bounds.InBounds(c) || c == from || occ.Occupied(c) {
			continue
		}
		walkable, err := q.IsWalkable(c)
		if err != nil {
			return nil, err
		}
		if !walkable {
			continue
		}
		p, ok, err := q.FindPath(from, c)
		if err != nil {
			return nil, err
		}
		if ok && p.Cost <= budget {
			out = append(out, c)
		}
	}
	return out, nil
}

// ShootTargets returns the cells within Manhattan distance maxShootDistance
// of from that hold a unit hostile to the shooter.
func ShootTargets(occ Occupancy, bounds Bounds, from grid.Coordinate, maxShootDistance int, hostile func(c grid.Coordinate) bool) ([]grid.Coordinate, error) {
	if maxShootDistance < 0 {
		return nil, fmt.Errorf("%w: shoot %d", ErrNegativeRange, maxShootDistance)
	}
	var out []grid.Coordinate
	for c := range square(from, maxShootDistance) {
		dx, dz := c.Delta(from)
		if dx+dz > maxShootDistance {
			continue
		}
		if bounds.InBounds(c) && occ.Occupied(c) && hostile(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// MeleeTargets returns the cells within the square of radius maxMeleeDistance
// around from that hold a unit hostile to the attacker.
func MeleeTargets(occ Occupancy, bounds Bounds, from grid.Coordinate, maxMeleeDistance int, hostile func(c grid.Coordinate) bool) ([]grid.Coordinate, error) {
	if maxMeleeDistance < 0 {
		return nil, fmt.Errorf("%w: melee %d", ErrNegativeRange, maxMeleeDistance)
	}
	var out []grid.Coordinate
	for c := range square(from, maxMeleeDistance) {
		if bounds.InBounds(c) && occ.Occupied(c) && hostile(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// square yields the cells of the square of radius r around from, x outer
// and z inner.
func square(from grid.Coordinate, r int) iter.Seq[grid.Coordinate] {
	return func(yield func(grid.Coordinate) bool) {
		for x := -r; x <= r; x++ {
			for z := -r; z <= r; z++ {
				if !yield(from.Add(grid.C(x, z))) {
					return
				}
			}
		}
	}
}
