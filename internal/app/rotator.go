package app

import (
	"context"

	"github.com/bft-labs/wallcycle/internal/domain"
	"github.com/bft-labs/wallcycle/internal/ports"
)

// Outcome classifies the result of a rotation cycle.
type Outcome int

const (
	// OutcomeApplied means a new wallpaper was set.
	OutcomeApplied Outcome = iota
	// OutcomeUnchanged means the selection equaled the displayed image.
	OutcomeUnchanged
	// OutcomeFailed means the display tool rejected the new wallpaper.
	OutcomeFailed
	// OutcomeNoCandidate means there was nothing to select from.
	OutcomeNoCandidate
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeFailed:
		return "failed"
	case OutcomeNoCandidate:
		return "no-candidate"
	default:
		return "unknown"
	}
}

// CycleResult describes one rotation cycle.
type CycleResult struct {
	// Probed is the image the display tool reported before the cycle
	Probed domain.ImagePath

	// Selected is the image chosen by the selector
	Selected domain.ImagePath

	Outcome Outcome

	// Err is the apply error when Outcome is OutcomeFailed
	Err error
}

// Rotator runs single rotation cycles against a display.
// It is not safe for concurrent use; the scheduler drives it from one goroutine.
type Rotator struct {
	catalog    domain.Catalog
	display    ports.Display
	selector   *Selector
	transition domain.Transition
	logger     ports.Logger

	// current is the image believed to be on screen. Advisory only.
	current domain.ImagePath
}

// NewRotator creates a rotator over an immutable catalog.
func NewRotator(
	catalog domain.Catalog,
	display ports.Display,
	selector *Selector,
	transition domain.Transition,
	logger ports.Logger,
) *Rotator {
	return &Rotator{
		catalog:    catalog,
		display:    display,
		selector:   selector,
		transition: transition,
		logger:     logger,
	}
}

// Current returns the image last observed or set by this rotator.
func (r *Rotator) Current() domain.ImagePath {
	return r.current
}

// RotateOnce probes the display, selects a different image and applies it.
// Failures are logged and reported in the result; they never abort the caller.
func (r *Rotator) RotateOnce(ctx context.Context) CycleResult {
	probed := r.display.ProbeCurrent(ctx)
	if probed.Known() {
		r.current = probed
		if !r.catalog.Contains(probed) {
			r.logger.Info("current wallpaper is outside the image paths", ports.Image("image", probed))
		}
	}
	res := CycleResult{Probed: probed}

	selected, ok := r.selector.Select(r.catalog, probed)
	if !ok {
		r.logger.Warn("could not select a random image")
		res.Outcome = OutcomeNoCandidate
		return res
	}
	res.Selected = selected

	if probed.Known() && selected.Equal(probed) {
		r.logger.Info("selected image is the same as current, skipping change", ports.Image("image", selected))
		res.Outcome = OutcomeUnchanged
		return res
	}

	if err := r.display.ApplyImage(ctx, selected, r.transition); err != nil {
		r.logger.Error("error setting wallpaper", ports.Err(err))
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	r.current = selected
	res.Outcome = OutcomeApplied
	return res
}
