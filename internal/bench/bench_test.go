package bench

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pipeworks/internal/solver"
)

func TestTriples_GrowthOrder(t *testing.T) {
	got := Triples(2, 4, 0)
	want := []Triple{
		{2, 2, 2},
		{2, 2, 3},
		{2, 3, 3},
		{3, 3, 3},
		{3, 3, 4},
		{3, 4, 4},
		{4, 4, 4},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d triples %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("triple %d: got %v want %v", i, got[i], want[i])
		}
	}
	for _, tr := range got {
		if tr.Height > tr.Width || tr.Width > tr.Depth {
			t.Fatalf("ordering broken: %v", tr)
		}
	}
}

func TestTriples_StepLimit(t *testing.T) {
	got := Triples(2, 10, 3)
	if len(got) != 3 {
		t.Fatalf("got %d triples, want 3", len(got))
	}
}

func TestRunner_MeasuresFakeSolver(t *testing.T) {
	script := filepath.Join(t.TempDir(), "gen.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho \"block_pos(1,1,1,a)\"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	r := Runner{
		Solver:  solver.Runner{Interpreter: "/bin/sh", Script: script},
		RunsPer: 2,
	}
	results, err := r.Run(context.Background(), 2, 3, 0)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for _, res := range results {
		if res.Runs != 2 {
			t.Fatalf("runs: got %d", res.Runs)
		}
		if res.Mean < 0 {
			t.Fatalf("negative mean %v", res.Mean)
		}
	}
}

func TestRunner_SolverFailureAborts(t *testing.T) {
	r := Runner{Solver: solver.Runner{Interpreter: "no-such-solver", Script: "gen.py"}}
	if _, err := r.Run(context.Background(), 2, 2, 0); err == nil {
		t.Fatal("want error from unreachable solver")
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	results := []Result{
		{Triple: Triple{Height: 2, Width: 2, Depth: 3}, Runs: 3, Mean: 1500 * time.Millisecond},
	}
	if err := WriteCSV(&sb, results); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), sb.String())
	}
	if lines[0] != "height,width,depth,cells,mean_seconds" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[1] != "2,2,3,12,1.5000" {
		t.Fatalf("row: %q", lines[1])
	}
}
