package debugview

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/tacgrid/actionrange"
	"github.com/katalvlaran/tacgrid/grid"
	"github.com/katalvlaran/tacgrid/logging"
)

// Loader builds a fresh scene, e.g. by re-reading the level file.
type Loader func() (*Scene, error)

// reloadRequest is posted as tcell.EventInterrupt data to ask for a reload.
type reloadRequest struct{}

// App is the interactive grid viewer. All scene and engine access happens on
// the goroutine that calls Run.
//
// Keys:
//
//	arrows   move the cursor
//	s / e    set the search start / end at the cursor
//	w        toggle walkability of the cursor cell
//	d        destroy the destructible obstacle covering the cursor
//	m        show the move range of the unit under the cursor
//	t        rerun the search with debug logging
//	r        reload the level
//	q, Esc   quit
type App struct {
	screen   tcell.Screen
	load     Loader
	log      *slog.Logger
	level    *slog.LevelVar
	renderer Renderer

	scene *Scene
	state State
}

// NewApp loads the first scene. screen must already be initialised.
func NewApp(screen tcell.Screen, load Loader, renderer Renderer, log *slog.Logger) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}
	scene, err := load()
	if err != nil {
		return nil, err
	}
	return &App{screen: screen, load: load, log: log, renderer: renderer, scene: scene}, nil
}

// TraceWith lets the t key lower lv to debug for one search. lv should be the
// level of the logger passed to NewApp.
func (a *App) TraceWith(lv *slog.LevelVar) { a.level = lv }

// Scene returns the current scene.
func (a *App) Scene() *Scene { return a.scene }

// State returns a copy of the view state.
func (a *App) State() State { return a.state }

// RequestReload asks the event loop to reload the level. Safe to call from
// any goroutine.
func (a *App) RequestReload() error {
	return a.screen.PostEvent(tcell.NewEventInterrupt(reloadRequest{}))
}

// Run draws and processes events until the user quits or the screen is
// finalised.
func (a *App) Run() {
	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil || !a.Handle(ev) {
			return
		}
	}
}

// Draw renders the current scene and shows it.
func (a *App) Draw() {
	a.renderer.Draw(a.screen, a.scene, &a.state)
	a.screen.Show()
}

// Handle applies one event and reports whether the loop should continue.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(reloadRequest); ok {
			a.reload()
		}
	case *tcell.EventKey:
		return a.key(ev)
	}
	return true
}

func (a *App) key(ev *tcell.EventKey) bool {
	a.state.Message = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(0, -1)
	case tcell.KeyDown:
		a.moveCursor(0, 1)
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
	case tcell.KeyRight:
		a.moveCursor(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 's':
			a.state.Start, a.state.HasStart = a.state.Cursor, true
			a.search()
		case 'e':
			a.state.End, a.state.HasEnd = a.state.Cursor, true
			a.search()
		case 'w':
			a.toggle()
		case 'd':
			a.destroy()
		case 'm':
			a.moveRange()
		case 'r':
			a.reload()
		}
	}
	return true
}

func (a *App) moveCursor(dx, dz int) {
	next := a.state.Cursor.Add(grid.C(dx, dz))
	if a.scene.Engine.InBounds(next) {
		a.state.Cursor = next
	}
}

// search reruns the path search when both endpoints are set.
func (a *App) search() {
	a.state.Searched, a.state.Found, a.state.Path, a.state.Cost = false, false, nil, 0
	if !a.state.HasStart || !a.state.HasEnd {
		return
	}
	p, ok, err := a.scene.Search(a.state.Start, a.state.End)
	if err != nil {
		a.fail("search", err)
		return
	}
	a.state.Searched, a.state.Found = true, ok
	if ok {
		a.state.Path, a.state.Cost = p.Coordinates, p.Cost
	}
	a.log.Debug("search", "start", a.state.Start, "end", a.state.End,
		"found", ok, "cost", p.Cost, "explored", a.scene.ExploredCount())
}

// trace reruns the current search with the log level lowered to debug.
func (a *App) trace() {
	if a.level == nil {
		a.state.Message = "tracing unavailable"
		return
	}
	logging.Bracket(a.level, slog.LevelDebug, a.search)
	a.state.Message = "search traced"
}

func (a *App) toggle() {
	walkable, err := a.scene.ToggleWalkable(a.state.Cursor)
	if err != nil {
		a.fail("toggle", err)
		return
	}
	a.state.Message = fmt.Sprintf("%s walkable=%t", a.state.Cursor, walkable)
	a.search()
}

func (a *App) destroy() {
	name, ok, err := a.scene.Destroy(a.state.Cursor)
	switch {
	case err != nil:
		a.fail("destroy", err)
		return
	case !ok:
		a.state.Message = "nothing destructible here"
		return
	}
	a.state.Message = fmt.Sprintf("destroyed %s", name)
	a.log.Info("obstacle destroyed", "name", name, "cell", a.state.Cursor)
	a.search()
}

func (a *App) moveRange() {
	a.state.Targets = nil
	if !a.scene.Roster.Occupied(a.state.Cursor) {
		a.state.Message = "no unit here"
		return
	}
	targets, err := a.scene.MoveTargets(a.state.Cursor, actionrange.DefaultMoveDistance)
	if err != nil {
		a.fail("move range", err)
		return
	}
	a.state.Targets = targets
	a.state.Message = fmt.Sprintf("%d move targets", len(targets))
}

// reload swaps in a freshly loaded scene. On failure the old scene stays.
func (a *App) reload() {
	scene, err := a.load()
	if err != nil {
		a.fail("reload", err)
		return
	}
	a.scene = scene
	a.state.Targets = nil
	if !scene.Engine.InBounds(a.state.Cursor) {
		a.state.Cursor = grid.C(0, 0)
	}
	if a.state.HasStart && !scene.Engine.InBounds(a.state.Start) {
		a.state.HasStart = false
	}
	if a.state.HasEnd && !scene.Engine.InBounds(a.state.End) {
		a.state.HasEnd = false
	}
	a.search()
	a.state.Message = "reloaded"
	a.log.Info("level reloaded", "path", scene.Path,
		"width", scene.Engine.Width(), "height", scene.Engine.Height())
}

func (a *App) fail(op string, err error) {
	a.state.Message = fmt.Sprintf("%s: %v", op, err)
	a.log.Warn(op+" failed", "err", err)
}
