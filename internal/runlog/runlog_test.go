package runlog

import (
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	dir := t.TempDir()
	j, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	want := []Record{
		{Width: 3, Height: 3, Depth: 3, Source: "solver", StartedAt: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC), Duration: 1200, Atoms: 53},
		{Width: 2, Height: 2, Depth: 3, Source: "bench", StartedAt: time.Date(2026, 8, 30, 9, 1, 0, 0, time.UTC), Duration: 310, Atoms: 20},
	}
	for _, rec := range want {
		if err := j.Append(rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := j.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := ReadAll(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Width != want[i].Width || got[i].Source != want[i].Source ||
			got[i].Duration != want[i].Duration || got[i].Atoms != want[i].Atoms {
			t.Fatalf("record %d: got %+v want %+v", i, got[i], want[i])
		}
		if !got[i].StartedAt.Equal(want[i].StartedAt) {
			t.Fatalf("record %d started_at: got %v want %v", i, got[i].StartedAt, want[i].StartedAt)
		}
	}
}

// Reopening appends a second zstd frame; both frames must decode.
func TestAppendAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	for session := 0; session < 2; session++ {
		j, err := Open(dir)
		if err != nil {
			t.Fatalf("open session %d: %v", session, err)
		}
		if err := j.Append(Record{Width: 3, Height: 3, Depth: 3, Source: "solver", StartedAt: time.Now().UTC()}); err != nil {
			t.Fatalf("append session %d: %v", session, err)
		}
		if err := j.Close(); err != nil {
			t.Fatalf("close session %d: %v", session, err)
		}
	}
	got, err := ReadAll(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}

func TestReadAll_MissingJournal(t *testing.T) {
	got, err := ReadAll(t.TempDir())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
