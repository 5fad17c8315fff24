package pathfinding

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/tacgrid/grid"
)

// DefaultProbeDistance is the half-height of the vertical obstacle probe:
// each cell is probed from 5 units below to 5 units above its reference point.
const DefaultProbeDistance = 5.0

// OpenSetKind selects the open-set data structure used by FindPath.
type OpenSetKind int

const (
	// OpenSetLinear keeps open cells in a slice and scans it for the lowest fCost.
	// Cheap for small tactics maps.
	OpenSetLinear OpenSetKind = iota

	// OpenSetHeap keeps open cells in a binary heap ordered by (fCost, insertion
	// sequence). Same results as OpenSetLinear, scales to larger grids.
	OpenSetHeap
)

// String returns the configuration name of the strategy.
func (k OpenSetKind) String() string {
	switch k {
	case OpenSetLinear:
		return "linear"
	case OpenSetHeap:
		return "heap"
	default:
		return fmt.Sprintf("OpenSetKind(%d)", int(k))
	}
}

// ParseOpenSet converts "linear" or "heap" (case-insensitive) to an OpenSetKind.
func ParseOpenSet(s string) (OpenSetKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return OpenSetLinear, nil
	case "heap":
		return OpenSetHeap, nil
	}
	return OpenSetLinear, fmt.Errorf("%w: %q", ErrUnknownOpenSet, s)
}

// Options configures an Engine.
//
// Logger         – destination for setup and search diagnostics (default: discarded).
// ProbeDistance  – vertical half-span passed to the ObstacleProber (default 5).
// ObstacleLayers – layers that make a cell unwalkable at Setup (default AllLayers).
// OpenSet        – open-set strategy (default OpenSetLinear).
// Anchor         – GridToWorld convention for the engine's grid, and therefore
//
//	the probe position of each cell (default grid.AnchorCorner).
//
// OnExpand       – called with each cell as it moves to the closed set.
type Options struct {
	Logger         *slog.Logger
	ProbeDistance  float64
	ObstacleLayers LayerMask
	OpenSet        OpenSetKind
	Anchor         grid.Anchor
	OnExpand       func(c grid.Coordinate)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		Logger:         slog.New(slog.DiscardHandler),
		ProbeDistance:  DefaultProbeDistance,
		ObstacleLayers: AllLayers,
		OpenSet:        OpenSetLinear,
		Anchor:         grid.AnchorCorner,
	}
}

// WithLogger routes engine diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProbeDistance sets the vertical half-span of the obstacle probe.
// Panics with ErrBadProbeDistance if d is not a positive finite number.
func WithProbeDistance(d float64) Option {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		panic(ErrBadProbeDistance.Error())
	}
	return func(o *Options) {
		o.ProbeDistance = d
	}
}

// WithObstacleLayers restricts which obstacle layers block cells at Setup.
func WithObstacleLayers(mask LayerMask) Option {
	return func(o *Options) {
		o.ObstacleLayers = mask
	}
}

// WithOpenSet selects the open-set strategy.
func WithOpenSet(kind OpenSetKind) Option {
	return func(o *Options) {
		o.OpenSet = kind
	}
}

// WithAnchor fixes the GridToWorld convention of the engine's grid.
func WithAnchor(a grid.Anchor) Option {
	return func(o *Options) {
		o.Anchor = a
	}
}

// WithOnExpand registers a callback run for every expanded cell.
// The callback must not call back into the engine's search or SetWalkable;
// such calls fail with ErrReentrantSearch.
func WithOnExpand(fn func(c grid.Coordinate)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}
