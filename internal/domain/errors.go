package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the wallcycle domain.
// These errors can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when the scheduler is started twice.
	ErrAlreadyRunning = errors.New("wallcycle: already running")

	// ErrNotRunning is returned for transitions that need a running scheduler.
	ErrNotRunning = errors.New("wallcycle: not running")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("wallcycle: invalid configuration")

	// ErrEmptyCatalog is returned when no image was discovered at startup.
	ErrEmptyCatalog = errors.New("wallcycle: no images found in the specified paths")
)

// SetError reports a failed attempt to apply a wallpaper.
type SetError struct {
	Image ImagePath

	// ExitCode is the tool's exit status, or -1 if it could not be launched
	ExitCode int

	// Stderr is the trimmed diagnostic output of the tool
	Stderr string

	// Err is the launch error, if any
	Err error
}

func (e *SetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("set wallpaper %s: %v", e.Image, e.Err)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("set wallpaper %s: exit status %d: %s", e.Image, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("set wallpaper %s: exit status %d", e.Image, e.ExitCode)
}

func (e *SetError) Unwrap() error {
	return e.Err
}
