package runstore

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndLatest(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	started := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if _, err := s.Record(ctx, Run{
		Width: 3, Height: 3, Depth: 3,
		Source:    "solver",
		StartedAt: started,
		Duration:  1500 * time.Millisecond,
		Model:     "block_pos(1,1,1,a)",
	}); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := s.Latest(ctx, 3, 3, 3)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Model != "block_pos(1,1,1,a)" || got.Source != "solver" {
		t.Fatalf("got %+v", got)
	}
	if !got.StartedAt.Equal(started) {
		t.Fatalf("started_at: got %v want %v", got.StartedAt, started)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Fatalf("duration: got %v", got.Duration)
	}
}

func TestLatestPicksNewestForDims(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	for _, model := range []string{"old", "mid", "new"} {
		if _, err := s.Record(ctx, Run{
			Width: 2, Height: 2, Depth: 2,
			Source: "solver", StartedAt: time.Now(), Model: model,
		}); err != nil {
			t.Fatalf("record %q: %v", model, err)
		}
	}
	// A run with other dimensions must not shadow the lookup.
	if _, err := s.Record(ctx, Run{
		Width: 4, Height: 4, Depth: 4,
		Source: "solver", StartedAt: time.Now(), Model: "other",
	}); err != nil {
		t.Fatalf("record other: %v", err)
	}

	got, err := s.Latest(ctx, 2, 2, 2)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Model != "new" {
		t.Fatalf("got %q, want %q", got.Model, "new")
	}
}

func TestLatestNoRuns(t *testing.T) {
	s := openTemp(t)
	_, err := s.Latest(context.Background(), 9, 9, 9)
	if err == nil || !strings.Contains(err.Error(), "no stored run for 9x9x9") {
		t.Fatalf("got %v", err)
	}
}

func TestCount(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := s.Record(ctx, Run{
			Width: 2, Height: 2, Depth: 3,
			Source: "bench", StartedAt: time.Now(), Model: "m",
		}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("got %d, want 3", n)
	}
}
