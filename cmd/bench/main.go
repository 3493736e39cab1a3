package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pipeworks/internal/applog"
	"pipeworks/internal/bench"
	"pipeworks/internal/runstore"
	"pipeworks/internal/solver"
)

func main() {
	var (
		start = flag.Int("start", 2, "starting dimension for the smallest box")
		max   = flag.Int("max", 4, "largest dimension to grow to")
		steps = flag.Int("steps", 0, "stop after this many triples (0 = until max)")
		runs  = flag.Int("runs", 3, "solver invocations per triple")

		solverBin = flag.String("solver", "python", "solver interpreter binary")
		script    = flag.String("script", "programs/generator.py", "generator script passed to the interpreter")

		out          = flag.String("out", "bench.csv", "CSV summary output path")
		dataDir      = flag.String("data", "./data", "runtime data directory (run store)")
		disableStore = flag.Bool("disable-store", false, "do not record samples in the run store")

		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, or error")
		logFormat = flag.String("log-format", "text", "log format: text or json")
	)
	flag.Parse()

	log := applog.New(*logLevel, *logFormat, os.Stderr)

	if *start < 1 || *max < *start {
		log.Error("need 1 <= start <= max", "start", *start, "max", *max)
		os.Exit(2)
	}

	var store *runstore.Store
	if !*disableStore {
		var err error
		if store, err = runstore.Open(filepath.Join(*dataDir, "runs.db")); err != nil {
			log.Warn("run store unavailable", "err", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	runner := bench.Runner{
		Solver:  solver.Runner{Interpreter: *solverBin, Script: *script},
		RunsPer: *runs,
		Store:   store,
		Log:     log,
	}
	results, err := runner.Run(context.Background(), *start, *max, *steps)
	if err != nil {
		fatal(log, "benchmark", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		fatal(log, "create csv", err)
	}
	if err := bench.WriteCSV(f, results); err != nil {
		_ = f.Close()
		fatal(log, "write csv", err)
	}
	if err := f.Close(); err != nil {
		fatal(log, "write csv", err)
	}
	log.Info("benchmark finished", "triples", len(results), "out", *out)

	for _, r := range results {
		fmt.Printf("%dx%dx%d: mean %s over %d runs\n", r.Height, r.Width, r.Depth, r.Mean, r.Runs)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	os.Exit(1)
}
