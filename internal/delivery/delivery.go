// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) managed by the application
// lifecycle.
type Delivery interface {
	// Serve blocks running the server until it stops or fails.
	Serve(ctx context.Context) error
}
