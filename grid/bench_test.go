package grid_test

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/tacgrid/grid"
)

// BenchmarkRegions measures region labelling on a random 500×500 grid
// with roughly a third of the cells blocked.
// Complexity: O(W×H×d)
func BenchmarkRegions(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n, 1, mgl64.Vec3{}, func(_ *grid.SpatialGrid[bool], _ grid.Coordinate) bool {
		return rng.Intn(3) != 0
	})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	keep := func(_ grid.Coordinate, ok bool) bool { return ok }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Regions(g, keep, grid.Conn8)
	}
}

// BenchmarkWorldToGrid measures the per-call conversion cost.
func BenchmarkWorldToGrid(b *testing.B) {
	g, err := grid.New(64, 64, 1.5, mgl64.Vec3{3, 0, 3}, func(_ *grid.SpatialGrid[struct{}], _ grid.Coordinate) struct{} {
		return struct{}{}
	})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	p := mgl64.Vec3{40.2, 0, 17.9}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.WorldToGrid(p)
	}
}
