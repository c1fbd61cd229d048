// Package delivery defines the contract every transport implementation
// (HTTP today, possibly others later) exposes to the application runner.
package delivery

import "context"

// Delivery is a running transport endpoint. Serve blocks until the endpoint
// stops; shutdown is driven through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
