package grid_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/stretchr/testify/require"
)

// fromRows builds a bool grid where rows[z][x] == '#' marks a blocked cell.
func fromRows(t *testing.T, rows ...string) *grid.SpatialGrid[bool] {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows), 1, mgl64.Vec3{}, func(_ *grid.SpatialGrid[bool], c grid.Coordinate) bool {
		return rows[c.Z][c.X] != '#'
	})
	require.NoError(t, err)
	return g
}

func open(_ grid.Coordinate, ok bool) bool { return ok }

// TestRegions_Conn4VsConn8 verifies diagonal gaps split regions only under Conn4.
func TestRegions_Conn4VsConn8(t *testing.T) {
	g := fromRows(t,
		".#",
		"#.",
	)
	require.Len(t, grid.Regions(g, open, grid.Conn4), 2)
	require.Len(t, grid.Regions(g, open, grid.Conn8), 1)
}

// TestRegions_Wall checks a full wall separates two islands.
func TestRegions_Wall(t *testing.T) {
	g := fromRows(t,
		"..#..",
		"..#..",
		"..#..",
	)
	regions := grid.Regions(g, open, grid.Conn8)
	require.Len(t, regions, 2)
	require.Len(t, regions[0], 6)
	require.Len(t, regions[1], 6)
	require.Equal(t, grid.C(0, 0), regions[0][0])
	require.Equal(t, grid.C(3, 0), regions[1][0])

	labels := grid.RegionLabels(g, open, grid.Conn8)
	idx, _ := g.Index(grid.C(2, 1))
	require.Equal(t, -1, labels[idx])
	idx, _ = g.Index(grid.C(4, 2))
	require.Equal(t, 1, labels[idx])
}

func TestRegions_AllBlocked(t *testing.T) {
	g := fromRows(t, "##", "##")
	require.Empty(t, grid.Regions(g, open, grid.Conn8))
}
