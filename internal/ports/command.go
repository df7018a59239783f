package ports

import "context"

// CommandResult holds the captured outcome of an external program.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success returns true if the program exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner runs external programs synchronously.
type CommandRunner interface {
	// Run executes name with args and waits for it to exit.
	// A non-zero exit is reported through CommandResult.ExitCode, not as an error.
	// An error is returned only when the program could not be started or waited on.
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
}
