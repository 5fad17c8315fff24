package grid

import "fmt"

// Coordinate is the integer (x, z) address of a cell. It is comparable and
// may be used as a map key; equality is structural.
type Coordinate struct {
	X, Z int
}

// C is shorthand for Coordinate{X: x, Z: z}.
func C(x, z int) Coordinate {
	return Coordinate{X: x, Z: z}
}

// Add returns the component-wise sum.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Z: c.Z + o.Z}
}

// Sub returns the component-wise difference.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Z: c.Z - o.Z}
}

// Delta returns the absolute per-axis distance between c and o.
func (c Coordinate) Delta(o Coordinate) (dx, dz int) {
	d := c.Sub(o)
	return abs(d.X), abs(d.Z)
}

// String formats the coordinate as "(x, z)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
