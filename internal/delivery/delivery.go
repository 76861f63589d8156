// Package delivery defines the contract every serving surface fulfils.
package delivery

import "context"

// Delivery is a long-running serving surface started by the composition
// root. Serve blocks until the server stops; shutdown runs through the
// fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
