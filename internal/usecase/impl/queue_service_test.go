package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crave/config"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	mockService "crave/internal/mocks/service"
	"crave/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// queueServiceFixtures holds all test dependencies for queue service tests.
type queueServiceFixtures struct {
	service  usecase.QueueUsecase
	orderAPI *mockService.MockOrderAPI
}

func createTestQueueService(t *testing.T) queueServiceFixtures {
	orderAPI := mockService.NewMockOrderAPI(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Queue.PollInterval = 10 * time.Millisecond

	return queueServiceFixtures{
		service:  NewQueueService(orderAPI, cfg, logger),
		orderAPI: orderAPI,
	}
}

func liveOrders() []*entity.Order {
	return []*entity.Order{
		{ID: "o1", OrderNumber: "ORD-1", CustomerName: "Alice", Status: entity.StatusPaid},
		{ID: "o2", OrderNumber: "ORD-2", CustomerName: "Bob", Status: entity.StatusPreparing},
		{ID: "o3", OrderNumber: "ORD-3", CustomerName: "Carol", Status: entity.StatusReady},
	}
}

func TestQueueService_Refresh_BuildsColumns(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().LiveQueue(mock.Anything).Return(liveOrders(), nil)

	view, err := fx.service.Refresh(ctx, entity.RoleKitchenManager)
	require.NoError(t, err)

	require.Len(t, view.Incoming, 1)
	require.Len(t, view.Cooking, 1)
	require.Len(t, view.Ready, 1)
	assert.Equal(t, "ORD-1", view.Incoming[0].OrderNumber)
	assert.Equal(t, "ORD-2", view.Cooking[0].OrderNumber)
	assert.Equal(t, "ORD-3", view.Ready[0].OrderNumber)
	assert.False(t, view.FetchedAt.IsZero())
}

func TestQueueService_Refresh_RoleCapabilitiesOnCards(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().LiveQueue(mock.Anything).Return(liveOrders(), nil).Twice()

	kitchen, err := fx.service.Refresh(ctx, entity.RoleKitchenManager)
	require.NoError(t, err)
	assert.True(t, kitchen.Incoming[0].CanAdvance)
	assert.True(t, kitchen.Cooking[0].CanAdvance)
	assert.False(t, kitchen.Ready[0].CanAdvance)

	counter, err := fx.service.Refresh(ctx, entity.RoleCounterStaff)
	require.NoError(t, err)
	require.Len(t, counter.Ready, 1)
	assert.True(t, counter.Ready[0].CanAdvance)
}

func TestQueueService_Refresh_CounterSeesOnlyReadyColumn(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().LiveQueue(mock.Anything).Return(liveOrders(), nil)

	view, err := fx.service.Refresh(ctx, entity.RoleCounterStaff)
	require.NoError(t, err)

	assert.Empty(t, view.Incoming)
	assert.Empty(t, view.Cooking)
	require.Len(t, view.Ready, 1)
	assert.Equal(t, "ORD-3", view.Ready[0].OrderNumber)
}

func TestQueueService_Refresh_AdminSeesAllColumns(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().LiveQueue(mock.Anything).Return(liveOrders(), nil)

	view, err := fx.service.Refresh(ctx, entity.RoleSuperAdmin)
	require.NoError(t, err)

	require.Len(t, view.Incoming, 1)
	require.Len(t, view.Cooking, 1)
	require.Len(t, view.Ready, 1)
	assert.True(t, view.Incoming[0].CanAdvance)
	assert.True(t, view.Cooking[0].CanAdvance)
	assert.True(t, view.Ready[0].CanAdvance)
}

func TestQueueService_Snapshot_NonStaffForbidden(t *testing.T) {
	fx := createTestQueueService(t)

	_, err := fx.service.Snapshot(context.Background(), entity.RoleCustomer)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestQueueService_Advance_KitchenMovesPaidToPreparing(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().LiveQueue(mock.Anything).Return(liveOrders(), nil).Once()
	_, err := fx.service.Refresh(ctx, entity.RoleKitchenManager)
	require.NoError(t, err)

	advanced := &entity.Order{ID: "o1", OrderNumber: "ORD-1", Status: entity.StatusPreparing}
	fx.orderAPI.EXPECT().
		UpdateStatus(mock.Anything, "o1", entity.StatusPreparing).
		Return(advanced, nil)

	// The board is refetched after the transition, never patched locally.
	fx.orderAPI.EXPECT().LiveQueue(mock.Anything).Return([]*entity.Order{
		advanced,
		{ID: "o2", OrderNumber: "ORD-2", Status: entity.StatusPreparing},
		{ID: "o3", OrderNumber: "ORD-3", Status: entity.StatusReady},
	}, nil).Once()

	view, err := fx.service.Advance(ctx, entity.RoleKitchenManager, "o1")
	require.NoError(t, err)

	assert.Empty(t, view.Incoming)
	assert.Len(t, view.Cooking, 2)
}

func TestQueueService_Advance_CounterCannotTouchKitchenColumns(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().LiveQueue(mock.Anything).Return(liveOrders(), nil).Once()
	_, err := fx.service.Refresh(ctx, entity.RoleCounterStaff)
	require.NoError(t, err)

	_, err = fx.service.Advance(ctx, entity.RoleCounterStaff, "o1")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestQueueService_Advance_UnknownOrder(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	fx.orderAPI.EXPECT().LiveQueue(mock.Anything).Return(liveOrders(), nil).Once()
	_, err := fx.service.Refresh(ctx, entity.RoleKitchenManager)
	require.NoError(t, err)

	_, err = fx.service.Advance(ctx, entity.RoleKitchenManager, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestQueueService_Poller_StartAndStop(t *testing.T) {
	fx := createTestQueueService(t)
	ctx := context.Background()

	fetched := make(chan struct{}, 16)
	fx.orderAPI.EXPECT().
		LiveQueue(mock.Anything).
		Run(func(_ context.Context) {
			select {
			case fetched <- struct{}{}:
			default:
			}
		}).
		Return(liveOrders(), nil).
		Maybe()

	require.NoError(t, fx.service.Start(ctx))
	// Starting twice is a no-op.
	require.NoError(t, fx.service.Start(ctx))

	select {
	case <-fetched:
	case <-time.After(time.Second):
		t.Fatal("poller never fetched")
	}

	fx.service.Stop()
	fx.service.Stop()

	view, err := fx.service.Snapshot(ctx, entity.RoleKitchenManager)
	require.NoError(t, err)
	assert.Len(t, view.Incoming, 1)
}
