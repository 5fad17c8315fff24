// Package actionrange computes the cells a unit may target with an action.
//
// Move targets are limited by path cost: a cell qualifies when the engine
// finds a path to it whose cost is at most maxMoveDistance straight steps
// (maxMoveDistance × pathfinding.MoveStraightCost). Diagonal steps cost 14,
// so four diagonal moves (56) exceed a range of 5 straight steps (50).
//
// Shoot targets are hostile units within a Manhattan radius; melee targets
// are hostile units within a square (Chebyshev) radius. Neither needs a path.
//
// All calculators scan the square around the unit with x in the outer loop
// and z in the inner loop and return cells in that order.
package actionrange
