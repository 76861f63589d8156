package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	mockRepo "crave/internal/mocks/repository"
	mockService "crave/internal/mocks/service"
	"crave/internal/state"
	"crave/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	cart      usecase.CartUsecase
	orderAPI  *mockService.MockOrderAPI
	payment   *mockService.MockPaymentService
	qr        *mockService.MockQRCodeService
	couponAPI *mockService.MockCouponAPI
	store     *state.Store
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	repo := mockRepo.NewMockSnapshotRepository(t)
	repo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.EXPECT().SaveCart(mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.EXPECT().DeleteCart(mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := state.New(repo, logger)

	couponAPI := mockService.NewMockCouponAPI(t)
	cart := NewCartService(couponAPI, store, logger)

	orderAPI := mockService.NewMockOrderAPI(t)
	payment := mockService.NewMockPaymentService(t)
	qr := mockService.NewMockQRCodeService(t)
	service := NewCheckoutService(orderAPI, payment, qr, cart, store, logger)

	return checkoutServiceFixtures{
		service:   service,
		cart:      cart,
		orderAPI:  orderAPI,
		payment:   payment,
		qr:        qr,
		couponAPI: couponAPI,
		store:     store,
	}
}

func seedCheckoutCart(t *testing.T, fx checkoutServiceFixtures, coins int64) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, fx.store.SetUser(ctx, &entity.User{
		ID: "u1", Name: "Alice", Role: entity.RoleCustomer, Coins: coins,
	}))
	_, err := fx.cart.AddItem(ctx, &usecase.AddItemInput{
		MenuItemID: "burger", Name: "Burger", UnitPrice: decimal.NewFromInt(100), Quantity: 2,
	})
	require.NoError(t, err)
}

func TestCheckoutService_Begin_RequiresAuth(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.Begin(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestCheckoutService_Begin_EmptyCartRejected(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	require.NoError(t, fx.store.SetUser(ctx, &entity.User{ID: "u1", Role: entity.RoleCustomer}))

	_, err := fx.service.Begin(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Begin_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCheckoutCart(t, fx, 0)

	fx.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, mock.MatchedBy(func(input service.CreateIntentInput) bool {
			return len(input.Items) == 1 &&
				input.Items[0].MenuItemID == "burger" &&
				input.Items[0].Quantity == 2 &&
				!input.UseCoins && input.CouponCode == ""
		})).
		Return(&service.PaymentSession{ClientSecret: "pi_123_secret_abc"}, nil)

	view, err := fx.service.Begin(ctx)
	require.NoError(t, err)

	assert.Equal(t, usecase.PhaseAwaitingPayment, view.Phase)
	assert.True(t, view.Amount.Equal(decimal.NewFromInt(200)))
	assert.NotEmpty(t, view.SessionID)
}

func TestCheckoutService_Begin_IntentFailureLeavesNoSession(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCheckoutCart(t, fx, 0)

	fx.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, mock.Anything).
		Return(nil, errors.New("backend unreachable"))

	_, err := fx.service.Begin(ctx)
	require.Error(t, err)

	view, err := fx.service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.PhaseIdle, view.Phase)

	// The cart survives a failed checkout start.
	cartView, err := fx.cart.View(ctx)
	require.NoError(t, err)
	assert.Len(t, cartView.Items, 1)
}

func TestCheckoutService_Pay_WithoutSessionRejected(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.Pay(context.Background(), &usecase.PayInput{PaymentMethodID: "pm_1"})
	assert.ErrorIs(t, err, domainerrors.ErrNoCheckoutSession)
}

func TestCheckoutService_Pay_DeclineKeepsSessionForRetry(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCheckoutCart(t, fx, 0)

	fx.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, mock.Anything).
		Return(&service.PaymentSession{ClientSecret: "pi_123_secret_abc"}, nil)
	_, err := fx.service.Begin(ctx)
	require.NoError(t, err)

	fx.payment.EXPECT().
		Confirm(mock.Anything, "pi_123_secret_abc", "pm_declined").
		Return(&service.PaymentResult{
			IntentID: "pi_123",
			Outcome:  service.PaymentFailed,
			Message:  "Your card was declined.",
		}, nil)

	view, err := fx.service.Pay(ctx, &usecase.PayInput{PaymentMethodID: "pm_declined"})
	require.NoError(t, err)

	assert.Equal(t, usecase.PhaseAwaitingPayment, view.Phase)
	assert.Equal(t, "Your card was declined.", view.ErrorMessage)

	// The cart is untouched by a declined payment.
	cartView, err := fx.cart.View(ctx)
	require.NoError(t, err)
	assert.Len(t, cartView.Items, 1)
}

func TestCheckoutService_Pay_Success_ReconcilesCoinsAndClearsCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCheckoutCart(t, fx, 300)

	// Redemption on: half of the 200 subtotal is 100, so 100 coins are
	// frozen as spent at intent time.
	_, err := fx.cart.SetUseCoins(ctx, true)
	require.NoError(t, err)

	fx.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, mock.MatchedBy(func(input service.CreateIntentInput) bool {
			return input.UseCoins
		})).
		Return(&service.PaymentSession{ClientSecret: "pi_123_secret_abc"}, nil)
	_, err = fx.service.Begin(ctx)
	require.NoError(t, err)

	fx.payment.EXPECT().
		Confirm(mock.Anything, "pi_123_secret_abc", "pm_card").
		Return(&service.PaymentResult{IntentID: "pi_123", Outcome: service.PaymentSucceeded}, nil)

	confirmedOrder := &entity.Order{
		ID:                  "order-1",
		OrderNumber:         "ORD-42",
		TotalAmount:         decimal.NewFromInt(530),
		Status:              entity.StatusPaid,
		CreatedAt:           time.Now(),
		EstimatedPickupTime: time.Now().Add(20 * time.Minute),
	}
	fx.orderAPI.EXPECT().
		ConfirmOrder(mock.Anything, mock.MatchedBy(func(input service.ConfirmOrderInput) bool {
			return input.PaymentIntentID == "pi_123" &&
				len(input.Items) == 1 &&
				input.Items[0].PriceAtPurchase.Equal(decimal.NewFromInt(100))
		})).
		Return(confirmedOrder, nil)

	fx.qr.EXPECT().
		GeneratePickupQR("order-1", "ORD-42").
		Return([]byte{0x89, 0x50}, nil)

	view, err := fx.service.Pay(ctx, &usecase.PayInput{PaymentMethodID: "pm_card"})
	require.NoError(t, err)

	assert.Equal(t, usecase.PhaseConfirmed, view.Phase)
	require.NotNil(t, view.Confirmation)
	assert.Equal(t, "ORD-42", view.Confirmation.OrderNumber)
	assert.Equal(t, int64(53), view.Confirmation.CoinsEarned)
	// floor(300 - 100 + floor(530/10)) = 253
	assert.Equal(t, int64(253), view.Confirmation.CoinBalance)
	assert.NotEmpty(t, view.Confirmation.PickupQR)

	user, ok := fx.store.User()
	require.True(t, ok)
	assert.Equal(t, int64(253), user.Coins)

	cartView, err := fx.cart.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, cartView.Items)
	assert.False(t, cartView.UseCoins)
}

func TestCheckoutService_Pay_OrderConfirmFailureDropsSession(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCheckoutCart(t, fx, 0)

	fx.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, mock.Anything).
		Return(&service.PaymentSession{ClientSecret: "pi_123_secret_abc"}, nil)
	_, err := fx.service.Begin(ctx)
	require.NoError(t, err)

	fx.payment.EXPECT().
		Confirm(mock.Anything, "pi_123_secret_abc", "pm_card").
		Return(&service.PaymentResult{IntentID: "pi_123", Outcome: service.PaymentSucceeded}, nil)
	fx.orderAPI.EXPECT().
		ConfirmOrder(mock.Anything, mock.Anything).
		Return(nil, errors.New("order confirmation failed"))

	_, err = fx.service.Pay(ctx, &usecase.PayInput{PaymentMethodID: "pm_card"})
	require.Error(t, err)

	view, err := fx.service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.PhaseIdle, view.Phase)
}

func TestCheckoutService_Abandon(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCheckoutCart(t, fx, 0)

	fx.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, mock.Anything).
		Return(&service.PaymentSession{ClientSecret: "pi_123_secret_abc"}, nil)
	_, err := fx.service.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, fx.service.Abandon(ctx))

	view, err := fx.service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.PhaseIdle, view.Phase)

	// Abandoning leaves the cart intact.
	cartView, err := fx.cart.View(ctx)
	require.NoError(t, err)
	assert.Len(t, cartView.Items, 1)
}
