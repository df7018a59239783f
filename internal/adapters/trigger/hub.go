// Package trigger turns out-of-band events (signals, file writes) into
// "rotate now" requests for the scheduler.
package trigger

import (
	"context"
	"fmt"

	"github.com/bft-labs/wallcycle/internal/ports"
)

// Hub fans every registered source into a single capacity-one channel.
// Requests arriving while one is already pending are coalesced.
type Hub struct {
	ch      chan struct{}
	sources []ports.TriggerSource
	logger  ports.Logger
}

// NewHub creates a hub for the given sources.
func NewHub(logger ports.Logger, sources ...ports.TriggerSource) *Hub {
	return &Hub{
		ch:      make(chan struct{}, 1),
		sources: sources,
		logger:  logger,
	}
}

// Start registers every source. The first registration failure is returned.
func (h *Hub) Start(ctx context.Context) error {
	for _, src := range h.sources {
		notify := func() {
			h.logger.Debug("rotation requested", ports.String("source", src.Name()))
			h.Notify()
		}
		if err := src.Start(ctx, notify); err != nil {
			return fmt.Errorf("register %s trigger: %w", src.Name(), err)
		}
		h.logger.Info("trigger registered", ports.String("source", src.Name()))
	}
	return nil
}

// Notify records a rotation request without blocking.
func (h *Hub) Notify() {
	select {
	case h.ch <- struct{}{}:
	default:
	}
}

// C returns the channel that receives coalesced rotation requests.
func (h *Hub) C() <-chan struct{} {
	return h.ch
}
