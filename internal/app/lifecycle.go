package app

import (
	"sync"

	"github.com/bft-labs/wallcycle/internal/domain"
	"github.com/bft-labs/wallcycle/internal/ports"
)

// State represents the lifecycle state of the rotation loop.
type State int

const (
	// StateStopped is the state before Run and after it returns.
	StateStopped State = iota
	// StateIdle waits for the next timer expiry or trigger.
	StateIdle
	// StateRotating runs one rotation cycle.
	StateRotating
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateIdle:
		return "Idle"
	case StateRotating:
		return "Rotating"
	default:
		return "Unknown"
	}
}

// Lifecycle manages the state machine of the rotation loop.
type Lifecycle struct {
	mu           sync.RWMutex
	state        State
	logger       ports.Logger
	eventEmitter EventEmitter
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// NewLifecycle creates a new lifecycle manager.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateStopped,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo attempts to transition to a new state.
// Returns an error if the transition is not valid.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state

	// Validate transition
	switch oldState {
	case StateStopped:
		if newState != StateRotating {
			l.mu.Unlock()
			return domain.ErrNotRunning
		}
	case StateIdle:
		if newState != StateRotating && newState != StateStopped {
			l.mu.Unlock()
			return domain.ErrAlreadyRunning
		}
	case StateRotating:
		if newState != StateIdle && newState != StateStopped {
			l.mu.Unlock()
			return domain.ErrAlreadyRunning
		}
	}

	l.state = newState
	l.mu.Unlock()

	// Emit event outside of lock
	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Debug("state transition",
		ports.String("from", oldState.String()),
		ports.String("to", newState.String()),
		ports.String("reason", reason),
	)

	return nil
}

// CanStart returns true if the loop is not running.
func (l *Lifecycle) CanStart() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateStopped
}
