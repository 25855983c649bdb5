// Package delivery defines the outer surfaces that expose the store.
package delivery

import "context"

// Delivery is a long-running surface started by the application entry point.
type Delivery interface {
	Serve(ctx context.Context) error
}
