package solver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeScript drops an executable shell script into a temp dir and
// returns its path; Runner invokes it via /bin/sh like an interpreter.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-generator.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestRun_CapturesStdout(t *testing.T) {
	script := writeScript(t, `echo "block_pos(1,1,1,a) pipe_pos(1,1,1,e,w)"`)
	r := Runner{Interpreter: "/bin/sh", Script: script}
	out, err := r.Run(context.Background(), 3, 2, 4)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "block_pos(1,1,1,a)") {
		t.Fatalf("stdout missing atoms: %q", out)
	}
}

func TestRun_PassesDimensionFlags(t *testing.T) {
	script := writeScript(t, `echo "$@"`)
	r := Runner{Interpreter: "/bin/sh", Script: script}
	out, err := r.Run(context.Background(), 3, 2, 4)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"--height=2", "--width=3", "--depth=4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("args %q missing %q", out, want)
		}
	}
}

func TestRun_MissingInterpreter(t *testing.T) {
	r := Runner{Interpreter: "definitely-not-a-real-solver-binary", Script: "gen.py"}
	_, err := r.Run(context.Background(), 3, 3, 3)
	if err == nil || !strings.Contains(err.Error(), "solver:") {
		t.Fatalf("got %v, want wrapped solver error", err)
	}
}

func TestRun_NonZeroExitCarriesStderr(t *testing.T) {
	script := writeScript(t, `echo "grounding failed" >&2; exit 3`)
	r := Runner{Interpreter: "/bin/sh", Script: script}
	_, err := r.Run(context.Background(), 3, 3, 3)
	if err == nil || !strings.Contains(err.Error(), "grounding failed") {
		t.Fatalf("got %v, want error carrying stderr", err)
	}
}

func TestLoadSolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.txt")
	if err := os.WriteFile(path, []byte("block_pos(1,1,1,a)"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadSolution(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "block_pos(1,1,1,a)" {
		t.Fatalf("got %q", got)
	}
	if _, err := LoadSolution(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("want error for missing file")
	}
}
