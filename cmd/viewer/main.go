package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pipeworks/internal/applog"
	"pipeworks/internal/debug"
	"pipeworks/internal/graphics"
	"pipeworks/internal/layout"
	"pipeworks/internal/palette"
	"pipeworks/internal/runlog"
	"pipeworks/internal/runstore"
	"pipeworks/internal/scene"
	"pipeworks/internal/solver"
	"pipeworks/internal/viewerconfig"
)

func main() {
	var (
		width  = flag.Int("width", 3, "layout width in cells")
		height = flag.Int("height", 3, "layout height in cells")
		depth  = flag.Int("depth", 3, "layout depth in cells")

		solverBin    = flag.String("solver", "python", "solver interpreter binary")
		script       = flag.String("script", "programs/generator.py", "generator script passed to the interpreter")
		solutionPath = flag.String("solution", "", "render a saved model text instead of invoking the solver")

		configPath   = flag.String("config", "configs/viewer.yaml", "viewer config path")
		dataDir      = flag.String("data", "./data", "runtime data directory (run store and journal)")
		disableStore = flag.Bool("disable-store", false, "do not record or read solver runs")
		fromStore    = flag.Bool("from-store", false, "render the most recent stored run for these dimensions")

		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, or error")
		logFormat = flag.String("log-format", "text", "log format: text or json")
	)
	flag.Parse()

	log := applog.New(*logLevel, *logFormat, os.Stderr)

	if *width <= 0 || *height <= 0 || *depth <= 0 {
		log.Error("dimensions must be positive", "width", *width, "height", *height, "depth", *depth)
		os.Exit(2)
	}
	box := layout.Box{Width: *width, Height: *height, Depth: *depth}

	cfg, err := viewerconfig.Load(*configPath)
	if err != nil {
		fatal(log, "load config", err)
	}

	ctx := context.Background()

	var store *runstore.Store
	var journal *runlog.Journal
	if !*disableStore {
		if store, err = runstore.Open(filepath.Join(*dataDir, "runs.db")); err != nil {
			log.Warn("run store unavailable", "err", err)
			store = nil
		} else {
			defer store.Close()
		}
		if journal, err = runlog.Open(filepath.Join(*dataDir, "journal")); err != nil {
			log.Warn("run journal unavailable", "err", err)
			journal = nil
		} else {
			defer journal.Close()
		}
	}

	model, source, elapsed, err := obtainModel(ctx, log, box, obtainOpts{
		solutionPath: *solutionPath,
		fromStore:    *fromStore,
		store:        store,
		runner:       solver.Runner{Interpreter: *solverBin, Script: *script},
	})
	if err != nil {
		fatal(log, "obtain model", err)
	}

	lay, err := layout.Parse(model)
	if err != nil {
		fatal(log, "parse model", err)
	}
	log.Info("model parsed", "cells", len(lay.Cells), "pipes", len(lay.Pipes), "source", source)

	plan, err := layout.BuildPlan(lay, box)
	if err != nil {
		fatal(log, "build plan", err)
	}

	if source == "solver" {
		record(ctx, log, store, journal, box, model, elapsed, len(lay.Cells)+len(lay.Pipes))
	}

	pal := palette.New(lay.Labels(), time.Now().UnixNano())

	scn, err := scene.New(plan, pal, box, cfg)
	if err != nil {
		fatal(log, "build scene", err)
	}

	dbg := debug.New()
	dbg.SetShowFPS(cfg.ShowFPS)
	dbg.SetShowMemAlloc(cfg.ShowMemAlloc)

	graphics.Run(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle, scn.Update, func() {
		scn.Draw()
		dbg.Draw()
	})
}

type obtainOpts struct {
	solutionPath string
	fromStore    bool
	store        *runstore.Store
	runner       solver.Runner
}

// obtainModel resolves the model text from a solution file, the run
// store, or a fresh solver invocation, in that precedence.
func obtainModel(ctx context.Context, log *slog.Logger, box layout.Box, o obtainOpts) (model, source string, elapsed time.Duration, err error) {
	switch {
	case o.solutionPath != "":
		model, err = solver.LoadSolution(o.solutionPath)
		return model, "file", 0, err
	case o.fromStore:
		if o.store == nil {
			return "", "", 0, errStoreDisabled
		}
		run, err := o.store.Latest(ctx, box.Width, box.Height, box.Depth)
		if err != nil {
			return "", "", 0, err
		}
		log.Info("replaying stored run", "id", run.ID, "started_at", run.StartedAt)
		return run.Model, "store", 0, nil
	default:
		started := time.Now()
		model, err = o.runner.Run(ctx, box.Width, box.Height, box.Depth)
		elapsed = time.Since(started)
		if err == nil {
			log.Info("solver finished", "duration", elapsed)
		}
		return model, "solver", elapsed, err
	}
}

var errStoreDisabled = errors.New("-from-store requires the run store (drop -disable-store)")

// record persists a fresh solver run; persistence failures are logged,
// not fatal.
func record(ctx context.Context, log *slog.Logger, store *runstore.Store, journal *runlog.Journal, box layout.Box, model string, elapsed time.Duration, atoms int) {
	startedAt := time.Now().Add(-elapsed)
	if store != nil {
		if _, err := store.Record(ctx, runstore.Run{
			Width: box.Width, Height: box.Height, Depth: box.Depth,
			Source:    "solver",
			StartedAt: startedAt,
			Duration:  elapsed,
			Model:     model,
		}); err != nil {
			log.Warn("record run", "err", err)
		}
	}
	if journal != nil {
		if err := journal.Append(runlog.Record{
			Width: box.Width, Height: box.Height, Depth: box.Depth,
			Source:    "solver",
			StartedAt: startedAt.UTC(),
			Duration:  elapsed.Milliseconds(),
			Atoms:     atoms,
		}); err != nil {
			log.Warn("journal run", "err", err)
		}
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	os.Exit(1)
}
