// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a transport server (HTTP, worker, ...) managed by the
// application lifecycle. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
