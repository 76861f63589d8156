// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"crave/internal/domain/entity"
)

// ErrSnapshotNotFound is returned when no snapshot has been persisted yet,
// e.g. on the first start of a freshly provisioned device.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository persists the device's client state across restarts:
// the authenticated-user snapshot and the cart, serialized independently.
// It is a cache with no logic of its own; the state container is the
// single writer and reads it once at initialization.
type SnapshotRepository interface {
	// LoadUser restores the persisted user snapshot.
	// Returns ErrSnapshotNotFound if none has been saved.
	LoadUser(ctx context.Context) (*entity.User, error)

	// SaveUser persists the user snapshot, replacing any previous one.
	SaveUser(ctx context.Context, user *entity.User) error

	// DeleteUser removes the persisted user snapshot. Deleting a missing
	// snapshot is not an error.
	DeleteUser(ctx context.Context) error

	// LoadCart restores the persisted cart.
	// Returns ErrSnapshotNotFound if none has been saved.
	LoadCart(ctx context.Context) (*entity.Cart, error)

	// SaveCart persists the cart, replacing any previous one.
	SaveCart(ctx context.Context, cart *entity.Cart) error

	// DeleteCart removes the persisted cart. Deleting a missing snapshot
	// is not an error.
	DeleteCart(ctx context.Context) error
}
