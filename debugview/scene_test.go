package debugview_test

import (
	"testing"

	"github.com/katalvlaran/tacgrid/config"
	"github.com/katalvlaran/tacgrid/debugview"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapping: a destructible crate over (2..3, 2..3) and a pillar on (2, 2).
const overlapping = `
grid: {width: 6, height: 6, cell_size: 1}
layers: [obstacles, cover]
obstacles:
  - {name: pillar, min: [2, 2], max: [3, 3], top: 3}
  - {name: crate, min: [2, 2], max: [4, 4], top: 1, destructible: true}
  - {name: hedge, layer: cover, min: [4, 0], max: [5, 1], top: 1}
`

func newScene(t *testing.T, src string) *debugview.Scene {
	t.Helper()
	doc, err := level.Parse([]byte(src))
	require.NoError(t, err)
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	s, err := debugview.NewScene(doc, cfg, nil)
	require.NoError(t, err)
	return s
}

func walkable(t *testing.T, s *debugview.Scene, c grid.Coordinate) bool {
	t.Helper()
	ok, err := s.Engine.IsWalkable(c)
	require.NoError(t, err)
	return ok
}

func TestScene_DestroyKeepsOverlappedCellsBlocked(t *testing.T) {
	s := newScene(t, overlapping)
	for _, c := range []grid.Coordinate{grid.C(2, 2), grid.C(3, 2), grid.C(2, 3), grid.C(3, 3)} {
		require.False(t, walkable(t, s, c), "%v", c)
	}
	// cover is not an obstacle layer by default
	require.True(t, walkable(t, s, grid.C(4, 0)))

	name, ok, err := s.Destroy(grid.C(3, 3))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "crate", name)

	assert.False(t, walkable(t, s, grid.C(2, 2)), "the pillar still stands")
	assert.True(t, walkable(t, s, grid.C(3, 2)))
	assert.True(t, walkable(t, s, grid.C(2, 3)))
	assert.True(t, walkable(t, s, grid.C(3, 3)))
	assert.True(t, walkable(t, s, grid.C(4, 0)))
}

func TestScene_DestroyKeepsToggledCells(t *testing.T) {
	s := newScene(t, overlapping)
	// open then close (2, 3) by hand: it stays closed after the crate goes
	_, err := s.ToggleWalkable(grid.C(2, 3))
	require.NoError(t, err)
	w, err := s.ToggleWalkable(grid.C(2, 3))
	require.NoError(t, err)
	require.False(t, w)

	_, ok, err := s.Destroy(grid.C(2, 3))
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, walkable(t, s, grid.C(2, 3)))
	assert.True(t, walkable(t, s, grid.C(3, 3)))
}

func TestScene_DestroyNothing(t *testing.T) {
	s := newScene(t, overlapping)
	_, ok, err := s.Destroy(grid.C(0, 0))
	require.NoError(t, err)
	assert.False(t, ok)
	// the pillar is not destructible
	s2 := newScene(t, `
grid: {width: 3, height: 3, cell_size: 1}
obstacles:
  - {name: pillar, min: [1, 1], max: [2, 2], top: 3}
`)
	_, ok, err = s2.Destroy(grid.C(1, 1))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, walkable(t, s2, grid.C(1, 1)))
}
