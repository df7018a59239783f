package ports

import "context"

// TriggerSource delivers out-of-band "rotate now" requests.
type TriggerSource interface {
	// Name identifies the source in logs.
	Name() string

	// Start registers the listener and begins delivering requests through
	// notify until ctx is canceled. A registration failure is returned
	// synchronously.
	Start(ctx context.Context, notify func()) error
}
