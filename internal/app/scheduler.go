package app

import (
	"context"
	"time"

	"github.com/bft-labs/wallcycle/internal/domain"
	"github.com/bft-labs/wallcycle/internal/ports"
)

// RotationEmitter is called after every rotation cycle.
type RotationEmitter interface {
	OnRotation(result CycleResult)
}

// Scheduler drives the rotator from a periodic timer and an external trigger.
type Scheduler struct {
	config    domain.RotationConfig
	rotator   *Rotator
	trigger   <-chan struct{}
	lifecycle *Lifecycle
	logger    ports.Logger
	emitter   RotationEmitter
}

// NewScheduler creates a scheduler. trigger delivers "rotate now" requests;
// a nil channel disables external triggering.
func NewScheduler(
	config domain.RotationConfig,
	rotator *Rotator,
	trigger <-chan struct{},
	lifecycle *Lifecycle,
	logger ports.Logger,
	emitter RotationEmitter,
) *Scheduler {
	return &Scheduler{
		config:    config,
		rotator:   rotator,
		trigger:   trigger,
		lifecycle: lifecycle,
		logger:    logger,
		emitter:   emitter,
	}
}

// Run rotates once immediately, then once per timer expiry or trigger.
// It returns nil when ctx is canceled, or after the first cycle in once mode.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.config.Validate(); err != nil {
		return err
	}
	if !s.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}

	s.logger.Info("starting wallpaper rotation",
		ports.Duration("interval", s.config.Interval),
		ports.String("transition", s.config.Transition.String()),
	)

	if err := s.cycle(ctx, "startup"); err != nil {
		return err
	}
	if s.config.Once {
		return s.stop("once mode")
	}

	for {
		s.drainTrigger()

		s.logger.Info("waiting until next change (send SIGUSR1 to change immediately)",
			ports.Duration("interval", s.config.Interval),
		)

		reason, ok := s.wait(ctx)
		if !ok {
			return s.stop("context canceled")
		}

		if err := s.cycle(ctx, reason); err != nil {
			return err
		}
	}
}

// wait blocks until the timer fires, a trigger arrives or ctx is canceled.
// The timer is armed fresh on every call.
func (s *Scheduler) wait(ctx context.Context) (string, bool) {
	timer := time.NewTimer(s.config.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", false
	case <-timer.C:
		s.logger.Info("interval expired, changing wallpaper")
		return "interval expired", true
	case <-s.trigger:
		s.logger.Info("received trigger, changing wallpaper immediately")
		return "trigger received", true
	}
}

// drainTrigger discards requests that arrived while a cycle was running, so
// every wait starts with a fresh listen.
func (s *Scheduler) drainTrigger() {
	select {
	case <-s.trigger:
		s.logger.Debug("discarding trigger received during rotation")
	default:
	}
}

func (s *Scheduler) cycle(ctx context.Context, reason string) error {
	if err := s.lifecycle.TransitionTo(StateRotating, reason); err != nil {
		return err
	}

	res := s.rotator.RotateOnce(ctx)
	s.logger.Debug("rotation cycle finished",
		ports.String("outcome", res.Outcome.String()),
		ports.Image("selected", res.Selected),
		ports.Image("current", s.rotator.Current()),
	)
	if s.emitter != nil {
		s.emitter.OnRotation(res)
	}

	return s.lifecycle.TransitionTo(StateIdle, "cycle "+res.Outcome.String())
}

func (s *Scheduler) stop(reason string) error {
	s.logger.Info("stopping wallpaper rotation", ports.String("reason", reason))
	return s.lifecycle.TransitionTo(StateStopped, reason)
}
