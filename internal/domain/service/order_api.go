package service

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// IntentItem is one cart line submitted when requesting a payment session.
type IntentItem struct {
	MenuItemID string
	Quantity   int
	Price      decimal.Decimal
}

// CreateIntentInput is the payload for obtaining a payment-session token.
// The backend recomputes the charge amount server-side from the items,
// the coupon and the coin flag; the client values are advisory.
type CreateIntentInput struct {
	Items      []IntentItem
	UseCoins   bool
	CouponCode string // empty when no coupon is applied
}

// PaymentSession is the provider token returned by the backend. The
// client secret authorizes exactly one charge amount.
type PaymentSession struct {
	ClientSecret string
}

// ConfirmItem is one frozen order line submitted at order creation.
// PriceAtPurchase is the price captured at cart time and is what the
// backend stores against the order; it is never recomputed.
type ConfirmItem struct {
	MenuItemID      string
	Quantity        int
	Variant         string
	PriceAtPurchase decimal.Decimal
}

// ConfirmOrderInput is the payload persisting the order after a
// successful payment confirmation.
type ConfirmOrderInput struct {
	PaymentIntentID string
	Items           []ConfirmItem
}

// OrderAPI is the order surface of the ordering backend.
type OrderAPI interface {
	// CreatePaymentIntent submits the cart and redemption choices and
	// returns the payment-session token.
	CreatePaymentIntent(ctx context.Context, input CreateIntentInput) (*PaymentSession, error)

	// ConfirmOrder persists the order record after the provider reported
	// a successful charge.
	ConfirmOrder(ctx context.Context, input ConfirmOrderInput) (*entity.Order, error)

	// MyOrders returns the order history for the current session user.
	MyOrders(ctx context.Context) ([]*entity.Order, error)

	// OrderByID fetches one order.
	OrderByID(ctx context.Context, id string) (*entity.Order, error)

	// LiveQueue returns all in-flight orders (Paid, Preparing, Ready).
	LiveQueue(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus asks the backend to move an order to the given status.
	// The backend enforces the forward-only progression.
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)
}
