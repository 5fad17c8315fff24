package debugview

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/tacgrid/actionrange"
	"github.com/katalvlaran/tacgrid/config"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/level"
	"github.com/katalvlaran/tacgrid/logging"
	"github.com/katalvlaran/tacgrid/pathfinding"
	"github.com/katalvlaran/tacgrid/physics"
)

// Scene is one loaded level: its document, the physics world built from it
// and a pathfinding engine set up over that world.
type Scene struct {
	Path     string
	Document *level.Document
	World    *physics.World
	Engine   *pathfinding.Engine
	Roster   *level.Roster

	obstacles map[string]physics.ObstacleID
	explored  map[grid.Coordinate]bool
	// walkability set by hand; survives obstacle removal
	overrides map[grid.Coordinate]bool
}

// LoadScene reads the level at path and builds a scene from it.
func LoadScene(path string, cfg *config.Config, log *slog.Logger) (*Scene, error) {
	doc, err := level.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := NewScene(doc, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// NewScene builds the physics world of doc and an engine configured by cfg.
func NewScene(doc *level.Document, cfg *config.Config, log *slog.Logger) (*Scene, error) {
	if log == nil {
		log = logging.Discard()
	}
	world, ids, err := doc.BuildWorld(physics.WithLogger(log))
	if err != nil {
		return nil, err
	}
	opts, err := cfg.EngineOptions(world.Layers(), log)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Document:  doc,
		World:     world,
		Roster:    doc.Roster(),
		obstacles: ids,
		explored:  make(map[grid.Coordinate]bool),
		overrides: make(map[grid.Coordinate]bool),
	}
	geo := doc.Geometry()
	opts = append(opts,
		pathfinding.WithAnchor(geo.Anchor),
		pathfinding.WithOnExpand(func(c grid.Coordinate) { s.explored[c] = true }),
	)
	s.Engine = pathfinding.NewEngine(world, opts...)
	if err := s.Engine.Setup(geo.Width, geo.Height, geo.CellSize, geo.Origin); err != nil {
		return nil, err
	}
	return s, nil
}

// Search runs FindPath and records the cells it expanded.
func (s *Scene) Search(start, end grid.Coordinate) (pathfinding.Path, bool, error) {
	clear(s.explored)
	return s.Engine.FindPath(start, end)
}

// Explored reports whether the last search expanded c.
func (s *Scene) Explored(c grid.Coordinate) bool { return s.explored[c] }

// ExploredCount returns the number of cells the last search expanded.
func (s *Scene) ExploredCount() int { return len(s.explored) }

// ToggleWalkable flips the walkability of c and returns the new value.
func (s *Scene) ToggleWalkable(c grid.Coordinate) (bool, error) {
	w, err := s.Engine.IsWalkable(c)
	if err != nil {
		return false, err
	}
	if err := s.Engine.SetWalkable(c, !w); err != nil {
		return false, err
	}
	s.overrides[c] = !w
	return !w, nil
}

// Destroy removes the first destructible obstacle, in declaration order,
// whose footprint covers c, then re-probes the cells it covered so that
// cells still under another blocking obstacle stay blocked. Cells toggled by
// hand keep their toggled value.
// It returns the obstacle's name, or false if none qualifies.
func (s *Scene) Destroy(c grid.Coordinate) (string, bool, error) {
	for _, o := range s.Document.Obstacles {
		id, ok := s.obstacles[o.Name]
		if !ok || !o.Destructible {
			continue
		}
		cells, err := s.World.CellsCovered(id, s.Engine)
		if err != nil {
			return "", false, err
		}
		if !slices.Contains(cells, c) {
			continue
		}
		if err := s.World.RemoveObstacle(id); err != nil {
			return "", false, err
		}
		delete(s.obstacles, o.Name)
		for _, cc := range cells {
			if _, manual := s.overrides[cc]; manual {
				continue
			}
			if _, err := s.Engine.Reprobe(cc); err != nil {
				return "", false, err
			}
		}
		return o.Name, true, nil
	}
	return "", false, nil
}

// MoveTargets returns the move range of the unit standing on c.
func (s *Scene) MoveTargets(c grid.Coordinate, maxMoveDistance int) ([]grid.Coordinate, error) {
	if !s.Roster.Occupied(c) {
		return nil, nil
	}
	// range queries are not a displayed search
	defer clear(s.explored)
	return actionrange.MoveTargets(s.Engine, s.Roster, s.Engine, c, maxMoveDistance)
}
