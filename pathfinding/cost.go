package pathfinding

import "github.com/katalvlaran/tacgrid/grid"

// Step costs in path-cost units.
const (
	MoveStraightCost = 10
	MoveDiagonalCost = 14
)

// Distance returns the octile distance between a and b:
// MoveDiagonalCost·min(dx,dz) + MoveStraightCost·|dx−dz|.
// For adjacent cells it is the exact step cost.
func Distance(a, b grid.Coordinate) int {
	dx, dz := a.Delta(b)
	diag, straight := dx, dz-dx
	if dz < dx {
		diag, straight = dz, dx-dz
	}
	return MoveDiagonalCost*diag + MoveStraightCost*straight
}
