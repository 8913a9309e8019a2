// Package delivery defines the contract every inbound delivery mechanism
// (HTTP server, background sweeper) fulfils so main can run them uniformly.
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until the
// delivery stops or fails; graceful shutdown happens through fx lifecycle
// hooks registered by each implementation.
type Delivery interface {
	Serve(ctx context.Context) error
}
