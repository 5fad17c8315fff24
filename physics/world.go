package physics

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/pathfinding"
)

// ObstacleID identifies an obstacle inside one World.
type ObstacleID int

// Obstacle is a static box. Min and Max are the footprint corners in world
// (x, z); Bottom and Top bound it along y.
type Obstacle struct {
	Name   string
	Layer  string
	Min    mgl64.Vec2
	Max    mgl64.Vec2
	Bottom float64
	Top    float64
}

// body is stored in cp.Shape.UserData.
type body struct {
	id       ObstacleID
	obstacle Obstacle
}

// Option configures a World.
type Option func(*World)

// WithLogger routes world diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// World is a set of static obstacles backed by a cp.Space. It is not safe
// for concurrent use.
type World struct {
	space  *cp.Space
	layers *Layers
	shapes map[ObstacleID]*cp.Shape
	nextID ObstacleID
	log    *slog.Logger
}

// NewWorld returns an empty world whose obstacles may use the given layers.
// A nil layers value registers layers lazily as obstacles are added.
func NewWorld(layers *Layers, opts ...Option) *World {
	if layers == nil {
		layers, _ = NewLayers()
	}
	w := &World{
		space:  cp.NewSpace(),
		layers: layers,
		shapes: make(map[ObstacleID]*cp.Shape),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Layers returns the world's layer registry.
func (w *World) Layers() *Layers { return w.layers }

// Len returns the number of obstacles.
func (w *World) Len() int { return len(w.shapes) }

// AddObstacle inserts o as a static box and returns its id.
// Returns ErrInvalidObstacle for an empty or non-finite footprint or when
// Top < Bottom, and the Layers error when o.Layer cannot be registered.
func (w *World) AddObstacle(o Obstacle) (ObstacleID, error) {
	if err := validate(o); err != nil {
		return 0, err
	}
	bit, err := w.layers.Add(o.Layer)
	if err != nil {
		return 0, err
	}

	bb := cp.BB{L: o.Min.X(), B: o.Min.Y(), R: o.Max.X(), T: o.Max.Y()}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(bit), cp.ALL_CATEGORIES))

	id := w.nextID
	w.nextID++
	shape.UserData = &body{id: id, obstacle: o}
	w.space.AddShape(shape)
	w.shapes[id] = shape

	w.log.Debug("obstacle added", "id", id, "name", o.Name, "layer", o.Layer,
		"min", o.Min, "max", o.Max, "bottom", o.Bottom, "top", o.Top)
	return id, nil
}

func validate(o Obstacle) error {
	for _, v := range []float64{o.Min.X(), o.Min.Y(), o.Max.X(), o.Max.Y(), o.Bottom, o.Top} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %q has a non-finite bound", ErrInvalidObstacle, o.Name)
		}
	}
	if o.Max.X() <= o.Min.X() || o.Max.Y() <= o.Min.Y() {
		return fmt.Errorf("%w: %q footprint %v..%v is empty", ErrInvalidObstacle, o.Name, o.Min, o.Max)
	}
	if o.Top < o.Bottom {
		return fmt.Errorf("%w: %q top %v below bottom %v", ErrInvalidObstacle, o.Name, o.Top, o.Bottom)
	}
	return nil
}

// RemoveObstacle deletes the obstacle, e.g. when a destructible object is
// destroyed. Callers then mark the affected cells walkable again; see
// CellsCovered.
func (w *World) RemoveObstacle(id ObstacleID) error {
	shape, ok := w.shapes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownObstacle, id)
	}
	w.space.RemoveShape(shape)
	delete(w.shapes, id)
	w.log.Debug("obstacle removed", "id", id, "name", shape.UserData.(*body).obstacle.Name)
	return nil
}

// Obstacle returns the obstacle registered under id.
func (w *World) Obstacle(id ObstacleID) (Obstacle, bool) {
	shape, ok := w.shapes[id]
	if !ok {
		return Obstacle{}, false
	}
	return shape.UserData.(*body).obstacle, true
}

// IDs returns the ids of all obstacles in ascending order.
func (w *World) IDs() []ObstacleID {
	ids := make([]ObstacleID, 0, len(w.shapes))
	for id := range w.shapes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ProbeObstacle reports whether an obstacle on one of the given layers
// contains (pos.X, pos.Z) in its footprint and overlaps the vertical span
// [pos.Y - verticalProbeDistance, pos.Y + verticalProbeDistance].
// *World implements pathfinding.ObstacleProber.
func (w *World) ProbeObstacle(pos mgl64.Vec3, verticalProbeDistance float64, layers pathfinding.LayerMask) bool {
	p := cp.Vector{X: pos.X(), Y: pos.Z()}
	lo, hi := pos.Y()-verticalProbeDistance, pos.Y()+verticalProbeDistance
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(layers))

	hit := false
	w.space.BBQuery(cp.BB{L: p.X, B: p.Y, R: p.X, T: p.Y}, filter, func(shape *cp.Shape, _ interface{}) {
		if hit {
			return
		}
		b := shape.UserData.(*body)
		if !footprintContains(shape, b.obstacle, p) {
			return
		}
		if b.obstacle.Bottom <= hi && b.obstacle.Top >= lo {
			hit = true
		}
	}, nil)
	return hit
}

// footprintContains tests p against the shape, excluding its max edges.
func footprintContains(shape *cp.Shape, o Obstacle, p cp.Vector) bool {
	if shape.PointQuery(p).Distance > 0 {
		return false
	}
	return p.X < o.Max.X() && p.Y < o.Max.Y()
}

// CellLocator is the grid geometry CellsCovered walks.
// *pathfinding.Engine satisfies it.
type CellLocator interface {
	Width() int
	Height() int
	GridToWorld(c grid.Coordinate) (mgl64.Vec3, error)
}

// CellsCovered lists, x outer and z inner, the cells whose reference point
// lies in the obstacle's footprint. These are the cells a probe at Setup
// could have blocked because of it.
func (w *World) CellsCovered(id ObstacleID, cells CellLocator) ([]grid.Coordinate, error) {
	shape, ok := w.shapes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownObstacle, id)
	}
	o := shape.UserData.(*body).obstacle

	var out []grid.Coordinate
	for x := 0; x < cells.Width(); x++ {
		for z := 0; z < cells.Height(); z++ {
			c := grid.C(x, z)
			pos, err := cells.GridToWorld(c)
			if err != nil {
				return nil, err
			}
			if footprintContains(shape, o, cp.Vector{X: pos.X(), Y: pos.Z()}) {
				out = append(out, c)
			}
		}
	}
	return out, nil
}
