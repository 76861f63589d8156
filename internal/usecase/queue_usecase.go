package usecase

import (
	"context"
	"time"

	"crave/internal/domain/entity"
)

// QueueUsecase owns the staff live-order queue: a background poller that
// replaces the snapshot on a fixed cadence, plus role-gated status
// transitions that round-trip through the backend.
type QueueUsecase interface {
	// Start launches the poller (immediate fetch, then a fixed ticker).
	// Starting an already running poller is a no-op.
	Start(ctx context.Context) error

	// Stop cancels the poller. Safe to call when not running.
	Stop()

	// Snapshot returns the last fetched queue, arranged into columns for
	// the given role. It never triggers a fetch.
	Snapshot(ctx context.Context, role entity.Role) (*QueueView, error)

	// Refresh forces an immediate fetch and returns the new snapshot.
	Refresh(ctx context.Context, role entity.Role) (*QueueView, error)

	// Advance moves an order one step forward. The transition is checked
	// against the role's capability and the adjacency rule before the
	// backend call; afterwards the queue is refetched rather than patched.
	Advance(ctx context.Context, role entity.Role, orderID string) (*QueueView, error)
}

// --- Output DTOs ---

// QueueOrder is one order card on the staff board.
type QueueOrder struct {
	ID           string             `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	CustomerName string             `json:"customerName"`
	Items        []entity.OrderItem `json:"items"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	CanAdvance   bool               `json:"canAdvance"` // whether the requesting role may move this card
}

// QueueView is the three-column board: incoming (Paid), cooking
// (Preparing) and ready for pickup (Ready). Kitchen roles get the
// incoming and cooking columns, counter roles the ready column, the
// admin all three.
type QueueView struct {
	FetchedAt time.Time    `json:"fetchedAt"`
	Incoming  []QueueOrder `json:"incoming"`
	Cooking   []QueueOrder `json:"cooking"`
	Ready     []QueueOrder `json:"ready"`
}
