package grid_test

import (
	"testing"

	"github.com/katalvlaran/tacgrid/grid"
	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Arithmetic(t *testing.T) {
	a, b := grid.C(3, -2), grid.C(-1, 5)
	assert.Equal(t, grid.C(2, 3), a.Add(b))
	assert.Equal(t, grid.C(4, -7), a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))

	dx, dz := a.Delta(b)
	assert.Equal(t, 4, dx)
	assert.Equal(t, 7, dz)
	assert.Equal(t, "(3, -2)", a.String())
}

func TestCoordinate_MapKey(t *testing.T) {
	seen := map[grid.Coordinate]int{}
	seen[grid.C(1, 2)]++
	seen[grid.Coordinate{X: 1, Z: 2}]++
	seen[grid.C(2, 1)]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[grid.C(1, 2)])
}

func TestParseAnchor(t *testing.T) {
	for in, want := range map[string]grid.Anchor{
		"":       grid.AnchorCorner,
		"corner": grid.AnchorCorner,
		"center": grid.AnchorCenter,
		"centre": grid.AnchorCenter,
	} {
		got, ok := grid.ParseAnchor(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := grid.ParseAnchor("middle")
	assert.False(t, ok)
	assert.Equal(t, "center", grid.AnchorCenter.String())
}
