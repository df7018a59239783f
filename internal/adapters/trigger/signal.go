package trigger

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// SignalSource requests a rotation whenever the process receives a signal
// (SIGUSR1 by default).
type SignalSource struct {
	sig os.Signal
}

// NewSignalSource listens for sig, or SIGUSR1 if sig is nil.
func NewSignalSource(sig os.Signal) *SignalSource {
	if sig == nil {
		sig = unix.SIGUSR1
	}
	return &SignalSource{sig: sig}
}

// Name identifies the source in logs.
func (s *SignalSource) Name() string {
	return "signal " + s.sig.String()
}

// Start subscribes to the signal until ctx is canceled.
func (s *SignalSource) Start(ctx context.Context, notify func()) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, s.sig)

	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				notify()
			}
		}
	}()
	return nil
}
