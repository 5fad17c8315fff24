package pathfinding_test

import (
	"testing"

	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/pathfinding"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b grid.Coordinate
		want int
	}{
		{grid.C(0, 0), grid.C(0, 0), 0},
		{grid.C(0, 0), grid.C(1, 0), 10},
		{grid.C(0, 0), grid.C(0, -1), 10},
		{grid.C(0, 0), grid.C(1, 1), 14},
		{grid.C(0, 0), grid.C(4, 4), 56},
		{grid.C(0, 0), grid.C(2, 4), 48},
		{grid.C(5, 1), grid.C(0, 0), 54},
		{grid.C(-3, 2), grid.C(3, -2), 76},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pathfinding.Distance(tc.a, tc.b), "Distance(%v,%v)", tc.a, tc.b)
		assert.Equal(t, tc.want, pathfinding.Distance(tc.b, tc.a), "Distance(%v,%v)", tc.b, tc.a)
	}
}

// TestDistance_StepCosts checks the heuristic prices single steps exactly.
func TestDistance_StepCosts(t *testing.T) {
	origin := grid.C(7, 7)
	for _, d := range grid.Offsets(grid.Conn8) {
		want := pathfinding.MoveStraightCost
		if d.X != 0 && d.Z != 0 {
			want = pathfinding.MoveDiagonalCost
		}
		assert.Equal(t, want, pathfinding.Distance(origin, origin.Add(d)), "offset %v", d)
	}
}
