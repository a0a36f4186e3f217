// Package delivery defines the servers the application exposes.
package delivery

import "context"

// Delivery is a long-running server started by main and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
