package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	mockRepo "crave/internal/mocks/repository"
	mockService "crave/internal/mocks/service"
	"crave/internal/state"
	"crave/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	couponAPI *mockService.MockCouponAPI
	repo      *mockRepo.MockSnapshotRepository
	store     *state.Store
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	repo := mockRepo.NewMockSnapshotRepository(t)
	repo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.EXPECT().SaveCart(mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.EXPECT().DeleteCart(mock.Anything).Return(nil).Maybe()

	couponAPI := mockService.NewMockCouponAPI(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := state.New(repo, logger)
	service := NewCartService(couponAPI, store, logger)

	return cartServiceFixtures{
		service:   service,
		couponAPI: couponAPI,
		repo:      repo,
		store:     store,
	}
}

func addLine(t *testing.T, fx cartServiceFixtures, id string, price int64, qty int) {
	t.Helper()

	_, err := fx.service.AddItem(context.Background(), &usecase.AddItemInput{
		MenuItemID: id,
		Name:       "Item " + id,
		UnitPrice:  decimal.NewFromInt(price),
		Quantity:   qty,
	})
	require.NoError(t, err)
}

func TestCartService_AddItem_MergesDuplicatePairs(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	addLine(t, fx, "burger", 200, 1)
	addLine(t, fx, "burger", 200, 1)

	view, err := fx.service.View(ctx)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestCartService_AddItem_DistinctVariantsStaySeparate(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, &usecase.AddItemInput{
		MenuItemID: "burger", Name: "Burger", Variant: "Large",
		UnitPrice: decimal.NewFromInt(250), Quantity: 1,
	})
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, &usecase.AddItemInput{
		MenuItemID: "burger", Name: "Burger", Variant: "Small",
		UnitPrice: decimal.NewFromInt(200), Quantity: 1,
	})
	require.NoError(t, err)

	view, err := fx.service.View(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
}

func TestCartService_CoinRedemption_CapsAtHalfTotal(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	require.NoError(t, fx.store.SetUser(ctx, &entity.User{
		ID: "u1", Role: entity.RoleCustomer, Coins: 1000,
	}))
	addLine(t, fx, "burger", 200, 2)

	view, err := fx.service.SetUseCoins(ctx, true)
	require.NoError(t, err)

	assert.True(t, view.Summary.Subtotal.Equal(decimal.NewFromInt(400)))
	assert.True(t, view.Summary.CoinDiscount.Equal(decimal.NewFromInt(200)))
	assert.True(t, view.Summary.FinalTotal.Equal(decimal.NewFromInt(200)))
}

func TestCartService_CoinRedemption_LimitedByBalance(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	require.NoError(t, fx.store.SetUser(ctx, &entity.User{
		ID: "u1", Role: entity.RoleCustomer, Coins: 50,
	}))
	addLine(t, fx, "burger", 200, 2)

	view, err := fx.service.SetUseCoins(ctx, true)
	require.NoError(t, err)

	assert.True(t, view.Summary.CoinDiscount.Equal(decimal.NewFromInt(50)))
	assert.True(t, view.Summary.FinalTotal.Equal(decimal.NewFromInt(350)))
}

func TestCartService_ApplyCoupon_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	addLine(t, fx, "pizza", 500, 2)

	fx.couponAPI.EXPECT().
		Validate(mock.Anything, "SAVE50", mock.MatchedBy(func(total decimal.Decimal) bool {
			return total.Equal(decimal.NewFromInt(1000))
		})).
		Return(&entity.Coupon{Code: "SAVE50", Discount: decimal.NewFromInt(50)}, nil)

	view, err := fx.service.ApplyCoupon(ctx, "SAVE50")
	require.NoError(t, err)

	assert.True(t, view.Summary.CouponDiscount.Equal(decimal.NewFromInt(50)))
	assert.True(t, view.Summary.FinalTotal.Equal(decimal.NewFromInt(950)))
}

func TestCartService_ApplyCoupon_SecondCouponBlocked(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	addLine(t, fx, "pizza", 500, 2)

	fx.couponAPI.EXPECT().
		Validate(mock.Anything, "SAVE50", mock.Anything).
		Return(&entity.Coupon{Code: "SAVE50", Discount: decimal.NewFromInt(50)}, nil)

	_, err := fx.service.ApplyCoupon(ctx, "SAVE50")
	require.NoError(t, err)

	_, err = fx.service.ApplyCoupon(ctx, "SAVE10")
	assert.ErrorIs(t, err, domainerrors.ErrCouponAlreadyApplied)
}

func TestCartService_ApplyCoupon_EmptyCartRejected(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.ApplyCoupon(context.Background(), "SAVE50")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCartService_RemoveLastItem_ClearsCoupon(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	addLine(t, fx, "pizza", 500, 1)

	fx.couponAPI.EXPECT().
		Validate(mock.Anything, "SAVE50", mock.Anything).
		Return(&entity.Coupon{Code: "SAVE50", Discount: decimal.NewFromInt(50)}, nil)
	_, err := fx.service.ApplyCoupon(ctx, "SAVE50")
	require.NoError(t, err)

	view, err := fx.service.RemoveItem(ctx, "pizza", "")
	require.NoError(t, err)

	assert.Empty(t, view.Items)
	assert.Nil(t, view.Coupon)
}

func TestCartService_SetUseCoins_RequiresSession(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.SetUseCoins(context.Background(), true)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestCartService_Clear_ResetsRedemptionState(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	require.NoError(t, fx.store.SetUser(ctx, &entity.User{
		ID: "u1", Role: entity.RoleCustomer, Coins: 100,
	}))
	addLine(t, fx, "pizza", 500, 1)
	_, err := fx.service.SetUseCoins(ctx, true)
	require.NoError(t, err)

	view, err := fx.service.Clear(ctx)
	require.NoError(t, err)

	assert.Empty(t, view.Items)
	assert.False(t, view.UseCoins)
	assert.True(t, view.Summary.FinalTotal.IsZero())
}

func TestComputeSummary_CouponLargerThanSubtotal(t *testing.T) {
	cart := &entity.Cart{Items: []entity.CartItem{
		{MenuItemID: "fries", UnitPrice: decimal.NewFromInt(100), Quantity: 1},
	}}
	coupon := &entity.Coupon{Code: "BIG", Discount: decimal.NewFromInt(500)}

	summary := computeSummary(cart, coupon, true, 1000)

	assert.True(t, summary.CoinDiscount.IsZero())
	assert.True(t, summary.FinalTotal.IsZero())
}

func TestComputeSummary_NeverNegative(t *testing.T) {
	values := []struct {
		subtotal int64
		discount int64
		balance  int64
	}{
		{0, 0, 0},
		{100, 100, 100},
		{100, 250, 0},
		{999, 1, 10000},
	}

	for _, tt := range values {
		cart := &entity.Cart{Items: []entity.CartItem{
			{MenuItemID: "x", UnitPrice: decimal.NewFromInt(tt.subtotal), Quantity: 1},
		}}
		summary := computeSummary(cart, &entity.Coupon{Discount: decimal.NewFromInt(tt.discount)}, true, tt.balance)
		assert.False(t, summary.FinalTotal.IsNegative(),
			"subtotal=%d discount=%d balance=%d", tt.subtotal, tt.discount, tt.balance)
	}
}
