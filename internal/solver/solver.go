// Package solver invokes the external layout generator and captures the
// model text it prints. The generator is a black box: any command that
// prints block_pos/pipe_pos/cell_value atoms works.
package solver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// stderrTailLimit bounds how much solver stderr is carried into the
// error message.
const stderrTailLimit = 512

// Runner invokes the generator as "<interpreter> <script> --height=H
// --width=W --depth=D" and returns its stdout. The call blocks until
// the process exits; there is no timeout or retry.
type Runner struct {
	Interpreter string
	Script      string
}

// Run executes the solver for one box size and returns the model text.
func (r Runner) Run(ctx context.Context, width, height, depth int) (string, error) {
	args := []string{
		r.Script,
		fmt.Sprintf("--height=%d", height),
		fmt.Sprintf("--width=%d", width),
		fmt.Sprintf("--depth=%d", depth),
	}
	cmd := exec.CommandContext(ctx, r.Interpreter, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if tail := stderrTail(stderr.String()); tail != "" {
			return "", fmt.Errorf("solver: %w: %s", err, tail)
		}
		return "", fmt.Errorf("solver: %w", err)
	}
	return stdout.String(), nil
}

// LoadSolution reads a saved model text from disk, for rendering a
// known solution without invoking the solver.
func LoadSolution(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("solution: %w", err)
	}
	return string(b), nil
}

func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTailLimit {
		s = "..." + s[len(s)-stderrTailLimit:]
	}
	return s
}
