package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartUsecase defines the interface for cart mutation and pricing operations.
// Every mutation returns the refreshed cart view so the UI renders from a
// single derived snapshot.
type CartUsecase interface {
	View(ctx context.Context) (*CartView, error)
	AddItem(ctx context.Context, input *AddItemInput) (*CartView, error)
	RemoveItem(ctx context.Context, menuItemID, variant string) (*CartView, error)
	Clear(ctx context.Context) (*CartView, error)
	ApplyCoupon(ctx context.Context, code string) (*CartView, error)
	RemoveCoupon(ctx context.Context) (*CartView, error)
	SetUseCoins(ctx context.Context, useCoins bool) (*CartView, error)
}

// --- Input DTOs ---

// AddItemInput defines the data required to add a line to the cart.
type AddItemInput struct {
	MenuItemID string          `json:"menuItemId" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	Variant    string          `json:"variant"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity" validate:"gte=0"`
}

// --- Output DTOs ---

// PriceSummary is the derived pricing breakdown, recomputed from scratch
// on every cart change:
//
//	subtotal     = sum(unitPrice * quantity)
//	afterCoupon  = max(0, subtotal - couponDiscount)
//	coinDiscount = min(coinBalance, afterCoupon / 2)   (when redemption is on)
//	finalTotal   = afterCoupon - coinDiscount
type PriceSummary struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	CouponDiscount decimal.Decimal `json:"couponDiscount"`
	CoinDiscount   decimal.Decimal `json:"coinDiscount"`
	FinalTotal     decimal.Decimal `json:"finalTotal"`
}

// CartView is the full cart state the UI renders: lines, redemption
// choices and the derived price summary.
type CartView struct {
	Items       []entity.CartItem `json:"items"`
	Coupon      *entity.Coupon    `json:"coupon,omitempty"`
	UseCoins    bool              `json:"useCoins"`
	CoinBalance int64             `json:"coinBalance"`
	Summary     PriceSummary      `json:"summary"`
}
