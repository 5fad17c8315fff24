package level

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/physics"
	"gopkg.in/yaml.v3"
)

// DefaultLayer is the layer of obstacles that do not name one, and the only
// layer of documents that declare none.
const DefaultLayer = "obstacles"

// Document is one decoded level file.
type Document struct {
	Name      string     `yaml:"name"`
	Grid      GridSpec   `yaml:"grid"`
	Layers    []string   `yaml:"layers"`
	Obstacles []Obstacle `yaml:"obstacles"`
	Units     []Unit     `yaml:"units"`
}

// GridSpec is the geometry block of a document.
type GridSpec struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	CellSize float64    `yaml:"cell_size"`
	Origin   [3]float64 `yaml:"origin"`
	Anchor   string     `yaml:"anchor"`
}

// Obstacle is a static box. Min and Max are world-space [x, z].
type Obstacle struct {
	Name         string     `yaml:"name"`
	Layer        string     `yaml:"layer"`
	Min          [2]float64 `yaml:"min"`
	Max          [2]float64 `yaml:"max"`
	Bottom       float64    `yaml:"bottom"`
	Top          float64    `yaml:"top"`
	Destructible bool       `yaml:"destructible"`
}

// Unit is a unit's starting cell. At is a grid [x, z].
type Unit struct {
	Name  string `yaml:"name"`
	At    [2]int `yaml:"at"`
	Enemy bool   `yaml:"enemy"`
}

// Cell returns the unit's grid coordinate.
func (u Unit) Cell() grid.Coordinate { return grid.C(u.At[0], u.At[1]) }

// Geometry is everything pathfinding.Engine.Setup needs about a level.
type Geometry struct {
	Width    int
	Height   int
	CellSize float64
	Origin   mgl64.Vec3
	Anchor   grid.Anchor
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML document, applies defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Marshal encodes the document back to YAML.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) applyDefaults() {
	if len(d.Layers) == 0 {
		d.Layers = []string{DefaultLayer}
	}
	for i := range d.Obstacles {
		if d.Obstacles[i].Layer == "" {
			d.Obstacles[i].Layer = DefaultLayer
		}
	}
}

// Validate checks the document for consistency:
//   - grid width, height and cell size are positive, the origin is finite,
//     the anchor is known;
//   - layer names are unique and non-empty;
//   - obstacles have unique names, finite bounds, a declared layer, a
//     non-empty footprint and Top ≥ Bottom;
//   - units have unique names and distinct in-bounds cells.
func (d *Document) Validate() error {
	g := d.Grid
	if g.Width <= 0 || g.Height <= 0 {
		return invalid("grid", "width=%d height=%d must be positive", g.Width, g.Height)
	}
	if !(g.CellSize > 0) || math.IsInf(g.CellSize, 0) {
		return invalid("grid.cell_size", "%v must be positive and finite", g.CellSize)
	}
	if _, ok := grid.ParseAnchor(g.Anchor); !ok {
		return invalid("grid.anchor", "unknown anchor %q", g.Anchor)
	}
	if !finite(g.Origin[:]...) {
		return invalid("grid.origin", "%v is not finite", g.Origin)
	}

	layers := make(map[string]bool, len(d.Layers))
	for i, l := range d.Layers {
		if l == "" {
			return invalid(fmt.Sprintf("layers[%d]", i), "empty name")
		}
		if layers[l] {
			return invalid(fmt.Sprintf("layers[%d]", i), "duplicate layer %q", l)
		}
		layers[l] = true
	}
	if len(layers) > physics.MaxLayers {
		return invalid("layers", "%d layers, at most %d", len(layers), physics.MaxLayers)
	}

	names := make(map[string]bool, len(d.Obstacles))
	for i, o := range d.Obstacles {
		field := fmt.Sprintf("obstacles[%d]", i)
		switch {
		case o.Name == "":
			return invalid(field, "missing name")
		case !finite(o.Min[0], o.Min[1], o.Max[0], o.Max[1], o.Bottom, o.Top):
			return invalid(field, "%q bounds %v..%v, height %v..%v not finite", o.Name, o.Min, o.Max, o.Bottom, o.Top)
		case names[o.Name]:
			return invalid(field, "duplicate obstacle %q", o.Name)
		case !layers[o.Layer]:
			return invalid(field, "%q uses undeclared layer %q", o.Name, o.Layer)
		case o.Max[0] <= o.Min[0] || o.Max[1] <= o.Min[1]:
			return invalid(field, "%q footprint %v..%v is empty", o.Name, o.Min, o.Max)
		case o.Top < o.Bottom:
			return invalid(field, "%q top %v below bottom %v", o.Name, o.Top, o.Bottom)
		}
		names[o.Name] = true
	}

	units := make(map[string]bool, len(d.Units))
	cells := make(map[grid.Coordinate]string, len(d.Units))
	for i, u := range d.Units {
		field := fmt.Sprintf("units[%d]", i)
		c := u.Cell()
		switch {
		case u.Name == "":
			return invalid(field, "missing name")
		case units[u.Name]:
			return invalid(field, "duplicate unit %q", u.Name)
		case c.X < 0 || c.X >= g.Width || c.Z < 0 || c.Z >= g.Height:
			return invalid(field, "%q at %s is outside the %dx%d grid", u.Name, c, g.Width, g.Height)
		case cells[c] != "":
			return invalid(field, "%q shares %s with %q", u.Name, c, cells[c])
		}
		units[u.Name] = true
		cells[c] = u.Name
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func invalid(field, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidDocument, field, fmt.Sprintf(format, args...))
}

// Geometry returns the grid geometry of a validated document.
func (d *Document) Geometry() Geometry {
	anchor, _ := grid.ParseAnchor(d.Grid.Anchor)
	return Geometry{
		Width:    d.Grid.Width,
		Height:   d.Grid.Height,
		CellSize: d.Grid.CellSize,
		Origin:   mgl64.Vec3(d.Grid.Origin),
		Anchor:   anchor,
	}
}

// BuildWorld registers the document's layers in declaration order and adds
// every obstacle. The returned map resolves obstacle names to their ids.
func (d *Document) BuildWorld(opts ...physics.Option) (*physics.World, map[string]physics.ObstacleID, error) {
	layers, err := physics.NewLayers(d.Layers...)
	if err != nil {
		return nil, nil, err
	}
	w := physics.NewWorld(layers, opts...)
	ids := make(map[string]physics.ObstacleID, len(d.Obstacles))
	for _, o := range d.Obstacles {
		id, err := w.AddObstacle(physics.Obstacle{
			Name:   o.Name,
			Layer:  o.Layer,
			Min:    mgl64.Vec2(o.Min),
			Max:    mgl64.Vec2(o.Max),
			Bottom: o.Bottom,
			Top:    o.Top,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("level: obstacle %q: %w", o.Name, err)
		}
		ids[o.Name] = id
	}
	return w, ids, nil
}

// Destructible reports whether the named obstacle may be removed in play.
func (d *Document) Destructible(name string) bool {
	for _, o := range d.Obstacles {
		if o.Name == name {
			return o.Destructible
		}
	}
	return false
}
