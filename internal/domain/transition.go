package domain

import (
	"fmt"
	"time"
)

// Defaults used when nothing else is configured.
const (
	DefaultInterval               = time.Hour
	DefaultTransitionType         = "random"
	DefaultTransitionDurationSecs = 3
)

// Transition describes how the display tool animates a wallpaper change.
type Transition struct {
	// Type is passed verbatim to the tool (e.g. "random", "fade", "wipe")
	Type string

	// DurationSecs is the animation length in whole seconds
	DurationSecs int
}

// String returns a human-readable representation of the transition.
func (t Transition) String() string {
	return fmt.Sprintf("%s/%ds", t.Type, t.DurationSecs)
}

// RotationConfig holds the parameters of the rotation loop.
// It is loaded once and never mutated while running.
type RotationConfig struct {
	Interval   time.Duration
	Transition Transition

	// Once stops the loop after the startup rotation
	Once bool
}

// Validate checks the rotation parameters.
func (c RotationConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}
	if c.Transition.Type == "" {
		return fmt.Errorf("%w: transition type is required", ErrInvalidConfig)
	}
	if c.Transition.DurationSecs < 0 {
		return fmt.Errorf("%w: transition duration must not be negative", ErrInvalidConfig)
	}
	return nil
}
