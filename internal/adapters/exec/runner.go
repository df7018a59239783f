package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/bft-labs/wallcycle/internal/ports"
)

// Runner implements ports.CommandRunner with os/exec.
// Invocations carry no timeout of their own; ctx is only canceled at shutdown.
type Runner struct{}

// NewRunner creates a new process runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes name with args and captures stdout, stderr and the exit status.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (ports.CommandResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return res, nil
	}

	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	res.ExitCode = -1
	return res, fmt.Errorf("run %s: %w", name, err)
}
