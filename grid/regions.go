package grid

// Regions finds all connected groups of cells whose payload satisfies keep,
// according to conn. Regions are returned in discovery order (scanning x outer,
// z inner); cells inside a region are in BFS order from its first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Regions[T any](g *SpatialGrid[T], keep func(c Coordinate, cell T) bool, conn Connectivity) [][]Coordinate {
	seen := make([]bool, g.Len())
	offsets := Offsets(conn)
	var regions [][]Coordinate

	for x := 0; x < g.width; x++ {
		for z := 0; z < g.height; z++ {
			c0 := Coordinate{X: x, Z: z}
			i0 := g.index(c0)
			if seen[i0] || !keep(c0, g.cells[i0]) {
				continue
			}
			// BFS to collect the region
			queue := []Coordinate{c0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					v := u.Add(d)
					if !g.InBounds(v) {
						continue
					}
					vi := g.index(v)
					if seen[vi] || !keep(v, g.cells[vi]) {
						continue
					}
					seen[vi] = true
					queue = append(queue, v)
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// RegionLabels returns, for every row-major index, the index of the region
// containing it in Regions order, or -1 for cells rejected by keep.
func RegionLabels[T any](g *SpatialGrid[T], keep func(c Coordinate, cell T) bool, conn Connectivity) []int {
	labels := make([]int, g.Len())
	for i := range labels {
		labels[i] = -1
	}
	for r, region := range Regions(g, keep, conn) {
		for _, c := range region {
			labels[g.index(c)] = r
		}
	}
	return labels
}
