// Package delivery defines the contract every transport-level server obeys.
package delivery

import "context"

// Delivery is a server that can be started by the application entrypoint.
// Shutdown is handled through the fx lifecycle, not through Serve.
type Delivery interface {
	Serve(ctx context.Context) error
}
