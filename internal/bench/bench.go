// Package bench measures solver wall time across progressively larger
// boxes and summarizes the results as CSV.
package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"pipeworks/internal/runstore"
	"pipeworks/internal/solver"
)

// Triple is one (height, width, depth) measurement point.
type Triple struct {
	Height, Width, Depth int
}

// Triples yields progressive triples with height <= width <= depth,
// starting from (start,start,start) and always bumping the smallest
// dimension so the box grows evenly. The walk stops when a dimension
// would exceed max, or after steps entries when steps > 0.
func Triples(start, max, steps int) []Triple {
	h, w, d := start, start, start
	var out []Triple
	for h <= max && w <= max && d <= max {
		out = append(out, Triple{Height: h, Width: w, Depth: d})
		if steps > 0 && len(out) >= steps {
			break
		}
		switch {
		case h == w && w == d:
			d++
		case w == d && h < w:
			h++
		default: // h == w && w < d
			w++
		}
	}
	return out
}

// Result is the aggregated timing for one triple.
type Result struct {
	Triple
	Runs int
	Mean time.Duration
}

// Runner executes the solver repeatedly across growing boxes. Store is
// optional; when set, every sample is recorded.
type Runner struct {
	Solver  solver.Runner
	RunsPer int
	Store   *runstore.Store
	Log     *slog.Logger
}

// Run walks Triples(start, max, steps) and times RunsPer solver calls
// per triple. The first solver failure aborts the benchmark.
func (r Runner) Run(ctx context.Context, start, max, steps int) ([]Result, error) {
	runsPer := r.RunsPer
	if runsPer <= 0 {
		runsPer = 1
	}
	triples := Triples(start, max, steps)
	results := make([]Result, 0, len(triples))
	for _, t := range triples {
		var total time.Duration
		for i := 0; i < runsPer; i++ {
			startedAt := time.Now()
			model, err := r.Solver.Run(ctx, t.Width, t.Height, t.Depth)
			if err != nil {
				return nil, fmt.Errorf("bench %dx%dx%d: %w", t.Width, t.Height, t.Depth, err)
			}
			elapsed := time.Since(startedAt)
			total += elapsed
			if r.Store != nil {
				_, err := r.Store.Record(ctx, runstore.Run{
					Width: t.Width, Height: t.Height, Depth: t.Depth,
					Source:    "bench",
					StartedAt: startedAt,
					Duration:  elapsed,
					Model:     model,
				})
				if err != nil && r.Log != nil {
					r.Log.Warn("store bench sample", "err", err)
				}
			}
		}
		res := Result{Triple: t, Runs: runsPer, Mean: total / time.Duration(runsPer)}
		results = append(results, res)
		if r.Log != nil {
			r.Log.Info("triple done",
				"height", t.Height, "width", t.Width, "depth", t.Depth,
				"runs", runsPer, "mean", res.Mean)
		}
	}
	return results, nil
}

// WriteCSV writes the summary table: one row per triple with the cell
// count and mean wall time in seconds.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"height", "width", "depth", "cells", "mean_seconds"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Height),
			strconv.Itoa(r.Width),
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Height * r.Width * r.Depth),
			strconv.FormatFloat(r.Mean.Seconds(), 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
