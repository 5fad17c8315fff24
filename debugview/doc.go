// Package debugview is a terminal viewer for the pathfinding grid of a level.
//
// It draws every cell of the engine's grid as one character (see the Symbol
// constants), colours walkable cells by 8-connected region, overlays the last
// search's explored cells and path, and shows the PathCell under the cursor.
// Obstacles can be toggled or destroyed and the level reloaded while the
// viewer runs; a FileWatcher triggers the reload when the level file changes.
//
// Rendering uses github.com/gdamore/tcell/v2; file watching uses
// github.com/fsnotify/fsnotify. The engine is only touched from the
// goroutine running App.Run.
package debugview
