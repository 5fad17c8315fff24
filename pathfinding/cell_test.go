package pathfinding_test

import (
	"testing"

	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/pathfinding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCell_Defaults(t *testing.T) {
	c := pathfinding.NewPathCell(grid.C(2, 3))
	assert.Equal(t, grid.C(2, 3), c.Coordinate())
	assert.True(t, c.Walkable())
	_, ok := c.Predecessor()
	assert.False(t, ok)
	assert.Zero(t, c.GCost())
	assert.Zero(t, c.FCost())
}

func TestPathCell_Costs(t *testing.T) {
	c := pathfinding.NewPathCell(grid.C(0, 0))
	c.SetGCost(20)
	c.SetHCost(14)
	assert.Zero(t, c.FCost(), "fCost only changes on CalculateFCost")
	c.CalculateFCost()
	assert.Equal(t, 34, c.FCost())

	c.SetGCost(pathfinding.Unreached)
	c.SetHCost(30)
	c.CalculateFCost()
	assert.Equal(t, pathfinding.Unreached, c.FCost(), "fCost saturates instead of overflowing")
}

func TestPathCell_Predecessor(t *testing.T) {
	c := pathfinding.NewPathCell(grid.C(1, 1))
	c.SetPredecessor(grid.C(0, 0))
	prev, ok := c.Predecessor()
	require.True(t, ok)
	assert.Equal(t, grid.C(0, 0), prev)

	c.ResetPredecessor()
	_, ok = c.Predecessor()
	assert.False(t, ok)
}

func TestPathCell_String(t *testing.T) {
	c := pathfinding.NewPathCell(grid.C(2, 3))
	c.SetGCost(20)
	c.SetHCost(14)
	c.CalculateFCost()
	assert.Equal(t, "(2, 3) g=20 h=14 f=34", c.String())

	c.SetGCost(pathfinding.Unreached)
	c.SetHCost(0)
	c.CalculateFCost()
	c.SetWalkable(false)
	assert.Equal(t, "(2, 3) g=- h=0 f=- blocked", c.String())
}
