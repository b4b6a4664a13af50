// Package delivery defines the contract every transport implementation
// (HTTP today, others later) exposes to the application entrypoint.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops or fails; shutdown is driven by the lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
