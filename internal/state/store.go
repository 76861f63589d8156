// Package state holds the device-scoped application state: the
// authenticated-user snapshot and the cart. It is the single writer of
// both; every mutation is serialized through the container and synced to
// the injected snapshot repository so a restart restores the session.
package state

import (
	"context"
	"log/slog"
	"sync"

	"crave/internal/domain/entity"
	"crave/internal/domain/repository"

	"github.com/pkg/errors"
)

// Store is the explicit application-state container. Views read through
// the accessors and never share the underlying instances.
type Store struct {
	mu     sync.Mutex
	repo   repository.SnapshotRepository
	logger *slog.Logger

	user *entity.User
	cart *entity.Cart
}

// New creates an empty store backed by the given snapshot repository.
// Call Hydrate before serving.
func New(repo repository.SnapshotRepository, logger *slog.Logger) *Store {
	return &Store{
		repo:   repo,
		logger: logger,
		cart:   &entity.Cart{},
	}
}

// Hydrate restores persisted state. Missing snapshots are expected on a
// fresh device and leave the corresponding slice empty.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.repo.LoadUser(ctx)
	switch {
	case err == nil:
		s.user = user
	case errors.Is(err, repository.ErrSnapshotNotFound):
		s.user = nil
	default:
		return errors.Wrap(err, "failed to hydrate user snapshot")
	}

	cart, err := s.repo.LoadCart(ctx)
	switch {
	case err == nil:
		s.cart = cart
	case errors.Is(err, repository.ErrSnapshotNotFound):
		s.cart = &entity.Cart{}
	default:
		return errors.Wrap(err, "failed to hydrate cart snapshot")
	}

	s.logger.Info("state hydrated",
		slog.Bool("hasUser", s.user != nil),
		slog.Int("cartItems", len(s.cart.Items)),
	)

	return nil
}

// User returns a copy of the authenticated-user snapshot, if any.
func (s *Store) User() (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, false
	}

	return s.user.Clone(), true
}

// SetUser replaces the user snapshot and persists it.
func (s *Store) SetUser(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user.Clone()
	if err := s.repo.SaveUser(ctx, s.user); err != nil {
		return errors.Wrap(err, "failed to persist user snapshot")
	}

	return nil
}

// UpdateCoins sets the cached loyalty-coin balance and persists the
// snapshot. Only the checkout orchestrator and the profile refresh call
// this.
func (s *Store) UpdateCoins(ctx context.Context, coins int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return errors.New("no authenticated user")
	}
	if coins < 0 {
		coins = 0
	}
	s.user.Coins = coins
	if err := s.repo.SaveUser(ctx, s.user); err != nil {
		return errors.Wrap(err, "failed to persist user snapshot")
	}

	return nil
}

// ClearUser drops the user snapshot, in memory and persisted.
func (s *Store) ClearUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.repo.DeleteUser(ctx); err != nil {
		return errors.Wrap(err, "failed to delete user snapshot")
	}

	return nil
}

// Cart returns a copy of the current cart.
func (s *Store) Cart() *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

// AddCartItem merges a line into the cart and persists it.
func (s *Store) AddCartItem(ctx context.Context, item entity.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(item)

	return errors.Wrap(s.repo.SaveCart(ctx, s.cart), "failed to persist cart snapshot")
}

// RemoveCartItem drops a line from the cart and persists it.
func (s *Store) RemoveCartItem(ctx context.Context, menuItemID, variant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Remove(menuItemID, variant)

	return errors.Wrap(s.repo.SaveCart(ctx, s.cart), "failed to persist cart snapshot")
}

// ClearCart empties the cart, in memory and persisted.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()

	return errors.Wrap(s.repo.DeleteCart(ctx), "failed to delete cart snapshot")
}
