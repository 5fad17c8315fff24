package pathfinding_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/pathfinding"
)

// benchmarkFindPath runs corner-to-corner searches on a 64×64 grid with
// roughly a fifth of the cells blocked.
func benchmarkFindPath(b *testing.B, kind pathfinding.OpenSetKind) {
	const n = 64
	rng := rand.New(rand.NewSource(1))
	rows := randomRows(rng, n, n, 20)
	e := newEngine(b, rows, pathfinding.WithOpenSet(kind))
	start, end := grid.C(0, 0), grid.C(n-1, n-1)
	if err := e.SetWalkable(start, true); err != nil {
		b.Fatal(err)
	}
	if err := e.SetWalkable(end, true); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := e.FindPath(start, end); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_Linear measures the linear-scan open set.
func BenchmarkFindPath_Linear(b *testing.B) { benchmarkFindPath(b, pathfinding.OpenSetLinear) }

// BenchmarkFindPath_Heap measures the heap open set.
func BenchmarkFindPath_Heap(b *testing.B) { benchmarkFindPath(b, pathfinding.OpenSetHeap) }
