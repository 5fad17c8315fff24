package grid

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity.
	Conn8
)

// Anchor fixes which point of a cell GridToWorld returns.
type Anchor int

const (
	// AnchorCorner maps a coordinate to the cell's minimum corner.
	AnchorCorner Anchor = iota
	// AnchorCenter maps a coordinate to the cell's centre.
	AnchorCenter
)

// String returns the lower-case anchor name used in level files.
func (a Anchor) String() string {
	switch a {
	case AnchorCorner:
		return "corner"
	case AnchorCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseAnchor converts "corner" or "center" (empty means corner).
func ParseAnchor(s string) (Anchor, bool) {
	switch s {
	case "", "corner":
		return AnchorCorner, true
	case "center", "centre":
		return AnchorCenter, true
	}
	return AnchorCorner, false
}

// Neighbour offsets. The Conn8 order is the order the path search visits
// neighbours in: row z-1 left to right, then z, then z+1.
var (
	conn4Offsets = []Coordinate{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	conn8Offsets = []Coordinate{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

// Offsets returns the neighbour offsets for conn. The slice must not be modified.
func Offsets(conn Connectivity) []Coordinate {
	if conn == Conn8 {
		return conn8Offsets
	}
	return conn4Offsets
}

// Option customises a SpatialGrid at construction.
type Option func(*gridOptions)

type gridOptions struct {
	anchor Anchor
}

// WithAnchor fixes the GridToWorld reference point. Default AnchorCorner.
func WithAnchor(a Anchor) Option {
	return func(o *gridOptions) {
		o.anchor = a
	}
}
