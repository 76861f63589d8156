// Package service defines interfaces for external capabilities the
// application depends on: the remote ordering backend, the payment
// provider, and local device services. Use cases depend on these
// contracts, never on the concrete clients.
package service

import (
	"context"

	"crave/internal/domain/entity"
)

// RegisterInput is the payload for creating a new account on the backend.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthAPI is the session-lifecycle surface of the ordering backend.
// Session credentials are carried as cookies by the underlying transport;
// a successful Login or Register primes the cookie jar for every other
// API in this package.
type AuthAPI interface {
	// Login authenticates and returns the user snapshot the backend replies with.
	Login(ctx context.Context, email, password string) (*entity.User, error)

	// Register creates an account and returns the authenticated user snapshot.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Logout invalidates the backend session.
	Logout(ctx context.Context) error

	// Profile refetches the authenticated user, primarily to refresh the
	// loyalty-coin balance.
	Profile(ctx context.Context) (*entity.User, error)
}
