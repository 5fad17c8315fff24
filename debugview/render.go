package debugview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/tacgrid/grid"
)

// Cell symbols.
const (
	SymbolWalkable = '.'
	SymbolBlocked  = '#'
	SymbolExplored = 'o'
	SymbolPath     = '*'
	SymbolTarget   = '+'
	SymbolStart    = 'S'
	SymbolEnd      = 'E'
	SymbolCursor   = '@'
	SymbolFriendly = 'u'
	SymbolEnemy    = 'x'
)

// regionPalette colours walkable regions; region i uses entry i mod len.
var regionPalette = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorTeal,
	tcell.ColorOlive,
	tcell.ColorAqua,
	tcell.ColorFuchsia,
	tcell.ColorSilver,
}

var (
	styleBlocked  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleExplored = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleCursor   = tcell.StyleDefault.Reverse(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFriendly = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus   = tcell.StyleDefault
)

// State is what the viewer shows on top of the scene.
type State struct {
	Cursor   grid.Coordinate
	Start    grid.Coordinate
	End      grid.Coordinate
	HasStart bool
	HasEnd   bool

	// Searched is set once a search ran for the current endpoints; Found and
	// Path hold its result.
	Searched bool
	Found    bool
	Path     []grid.Coordinate
	Cost     int

	Targets []grid.Coordinate
	Message string
}

// Renderer draws a scene onto a tcell screen: row z of the grid is screen
// row z, column x is screen column x. Two status lines follow the grid.
type Renderer struct {
	ShowExplored bool
}

// Draw clears screen and paints the scene and state. It does not call Show.
func (r Renderer) Draw(screen tcell.Screen, s *Scene, st *State) {
	screen.Clear()
	e := s.Engine
	w, h := e.Width(), e.Height()

	labels := regionLabels(s)
	onPath := make(map[grid.Coordinate]bool, len(st.Path))
	for _, c := range st.Path {
		onPath[c] = true
	}
	targets := make(map[grid.Coordinate]bool, len(st.Targets))
	for _, c := range st.Targets {
		targets[c] = true
	}

	for x := 0; x < w; x++ {
		for z := 0; z < h; z++ {
			c := grid.C(x, z)
			ch, style := r.symbol(s, st, c, labels[z*w+x], onPath[c], targets[c])
			screen.SetContent(x, z, ch, nil, style)
		}
	}

	drawText(screen, 0, h, styleStatus, r.status(s, st))
	if st.Message != "" {
		drawText(screen, 0, h+1, styleStatus, st.Message)
	}
}

func (r Renderer) symbol(s *Scene, st *State, c grid.Coordinate, region int, onPath, target bool) (rune, tcell.Style) {
	switch {
	case c == st.Cursor:
		return SymbolCursor, styleCursor
	case st.HasStart && c == st.Start:
		return SymbolStart, styleEndpoint
	case st.HasEnd && c == st.End:
		return SymbolEnd, styleEndpoint
	case onPath:
		return SymbolPath, stylePath
	}
	if u, ok := s.Roster.At(c); ok {
		if u.Enemy {
			return SymbolEnemy, styleEnemy
		}
		return SymbolFriendly, styleFriendly
	}
	switch {
	case target:
		return SymbolTarget, styleTarget
	case region < 0:
		return SymbolBlocked, styleBlocked
	case r.ShowExplored && s.Explored(c):
		return SymbolExplored, styleExplored
	}
	return SymbolWalkable, tcell.StyleDefault.Foreground(regionPalette[region%len(regionPalette)])
}

// status describes the cursor cell and the last search.
func (r Renderer) status(s *Scene, st *State) string {
	line := st.Cursor.String()
	if cell, err := s.Engine.Cell(st.Cursor); err == nil {
		line = cell.String()
	}
	if pos, err := s.Engine.GridToWorld(st.Cursor); err == nil {
		line += " at " + formatVec(pos)
	}
	if st.Searched {
		if st.Found {
			line += fmt.Sprintf("  cost %d, %d cells, %d explored", st.Cost, len(st.Path), s.ExploredCount())
		} else {
			line += "  no path"
		}
	}
	return line
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("[%g %g %g]", v.X(), v.Y(), v.Z())
}

// regionLabels labels 8-connected walkable regions, -1 for blocked cells.
func regionLabels(s *Scene) []int {
	e := s.Engine
	g, err := grid.New(e.Width(), e.Height(), 1, mgl64.Vec3{},
		func(_ *grid.SpatialGrid[bool], c grid.Coordinate) bool {
			ok, _ := e.IsWalkable(c)
			return ok
		})
	if err != nil {
		return nil
	}
	return grid.RegionLabels(g, func(_ grid.Coordinate, ok bool) bool { return ok }, grid.Conn8)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
