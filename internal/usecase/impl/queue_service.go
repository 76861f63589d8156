package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crave/config"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	"crave/internal/usecase"

	"github.com/pkg/errors"
)

// queueService implements the QueueUsecase interface. A background
// poller refetches the live queue on a fixed cadence and atomically
// replaces the snapshot; readers never see a partially applied update.
type queueService struct {
	orderAPI     service.OrderAPI
	pollInterval time.Duration
	logger       *slog.Logger

	mu        sync.RWMutex
	orders    []*entity.Order
	fetchedAt time.Time

	runMu   sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewQueueService is the constructor for queueService.
func NewQueueService(
	orderAPI service.OrderAPI,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.QueueUsecase {
	return &queueService{
		orderAPI:     orderAPI,
		pollInterval: cfg.Queue.PollInterval,
		logger:       logger,
	}
}

// Start launches the poller: one immediate fetch, then a fixed ticker.
func (srv *queueService) Start(ctx context.Context) error {
	srv.runMu.Lock()
	defer srv.runMu.Unlock()

	if srv.cancel != nil {
		return nil
	}

	// The poller outlives the calling request; only Stop cancels it.
	pollCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	srv.cancel = cancel
	srv.stopped = make(chan struct{})

	go srv.run(pollCtx)

	srv.logger.Info("Queue poller started", "interval", srv.pollInterval.String())

	return nil
}

// Stop cancels the poller and waits for the loop to exit.
func (srv *queueService) Stop() {
	srv.runMu.Lock()
	defer srv.runMu.Unlock()

	if srv.cancel == nil {
		return
	}
	srv.cancel()
	<-srv.stopped
	srv.cancel = nil
	srv.stopped = nil

	srv.logger.Info("Queue poller stopped")
}

func (srv *queueService) run(ctx context.Context) {
	defer close(srv.stopped)

	if err := srv.fetch(ctx); err != nil {
		srv.logger.Warn("Queue fetch failed", "error", err)
	}

	ticker := time.NewTicker(srv.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := srv.fetch(ctx); err != nil {
				// Keep the last good snapshot; the next tick retries.
				srv.logger.Warn("Queue fetch failed", "error", err)
			}
		}
	}
}

// fetch replaces the snapshot wholesale. No in-place patching: the
// backend is the single source of truth for order state.
func (srv *queueService) fetch(ctx context.Context) error {
	orders, err := srv.orderAPI.LiveQueue(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch live queue")
	}

	srv.mu.Lock()
	srv.orders = orders
	srv.fetchedAt = time.Now()
	srv.mu.Unlock()

	return nil
}

// Snapshot arranges the last fetched queue into role-scoped columns.
func (srv *queueService) Snapshot(_ context.Context, role entity.Role) (*usecase.QueueView, error) {
	if !role.IsStaff() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return buildQueueView(srv.orders, srv.fetchedAt, role), nil
}

// Refresh forces an immediate fetch.
func (srv *queueService) Refresh(ctx context.Context, role entity.Role) (*usecase.QueueView, error) {
	if !role.IsStaff() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	if err := srv.fetch(ctx); err != nil {
		return nil, err
	}

	return srv.Snapshot(ctx, role)
}

// Advance moves an order one step forward after checking the adjacency
// rule and the role's capability, then refetches instead of patching the
// local snapshot.
func (srv *queueService) Advance(ctx context.Context, role entity.Role, orderID string) (*usecase.QueueView, error) {
	srv.mu.RLock()
	var current *entity.Order
	for _, order := range srv.orders {
		if order.ID == orderID {
			current = order

			break
		}
	}
	srv.mu.RUnlock()

	if current == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "order not in live queue")
	}

	next, ok := current.Status.Next()
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition)
	}
	if !role.CanAdvanceFrom(current.Status) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	srv.logger.Info("Advancing order",
		"orderID", orderID,
		"from", current.Status.String(),
		"to", next.String(),
	)

	if _, err := srv.orderAPI.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	return srv.Refresh(ctx, role)
}

func buildQueueView(orders []*entity.Order, fetchedAt time.Time, role entity.Role) *usecase.QueueView {
	view := &usecase.QueueView{FetchedAt: fetchedAt}

	for _, order := range orders {
		card := usecase.QueueOrder{
			ID:           order.ID,
			OrderNumber:  order.OrderNumber,
			CustomerName: order.CustomerName,
			Items:        order.Items,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt,
			CanAdvance:   role.CanAdvanceFrom(order.Status),
		}

		// Column visibility follows the role: the kitchen works the
		// Incoming and Cooking columns, pickup handoff sees Ready.
		switch order.Status {
		case entity.StatusPaid:
			if role.IsKitchen() {
				view.Incoming = append(view.Incoming, card)
			}
		case entity.StatusPreparing:
			if role.IsKitchen() {
				view.Cooking = append(view.Cooking, card)
			}
		case entity.StatusReady:
			if role.IsCounter() || role.IsKitchen() {
				view.Ready = append(view.Ready, card)
			}
		case entity.StatusPickedUp:
			// Terminal orders fall off the board.
		}
	}

	return view
}
