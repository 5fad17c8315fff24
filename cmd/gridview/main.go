// Command gridview opens a level in a terminal viewer showing its pathfinding
// grid. Pick search endpoints with the cursor, toggle cells and watch the
// path update.
//
//	gridview --level levels/training.yaml --open-set heap --log-file gridview.log
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/tacgrid/config"
	"github.com/katalvlaran/tacgrid/debugview"
	"github.com/katalvlaran/tacgrid/logging"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gridview:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("gridview", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	logFile := fs.String("log-file", "", "write logs to this file; the terminal belongs to the viewer")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if cfg.Level == "" {
		return errors.New("no level given; use --level or TACGRID_LEVEL")
	}

	lv := new(slog.LevelVar)
	log := logging.Discard()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log = cfg.Logger(f, lv)
	}

	load := func() (*debugview.Scene, error) {
		return debugview.LoadScene(cfg.Level, cfg, log)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app, err := debugview.NewApp(screen, load, debugview.Renderer{ShowExplored: cfg.View.ShowExplored}, log)
	if err != nil {
		return err
	}
	app.TraceWith(lv)
	log.Info("level loaded", "path", cfg.Level,
		"width", app.Scene().Engine.Width(), "height", app.Scene().Engine.Height(),
		"obstacles", app.Scene().World.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.View.Watch {
		w, err := debugview.NewFileWatcher(cfg.Level, debugview.DefaultDebounce, log)
		if err != nil {
			return err
		}
		go func() {
			err := w.Run(ctx, func() {
				if err := app.RequestReload(); err != nil {
					log.Warn("reload request dropped", "err", err)
				}
			})
			if err != nil {
				log.Error("watcher stopped", "err", err)
			}
		}()
	}

	app.Run()
	return nil
}
