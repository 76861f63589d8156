package service

import (
	"context"
	"time"

	"crave/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateCouponInput is the payload for the admin coupon-creation call.
// Constraints (minimum order value, expiry, usage limit) are enforced by
// the backend at validation time.
type CreateCouponInput struct {
	Code           string
	DiscountType   string // "PERCENTAGE" or "FIXED"
	DiscountAmount decimal.Decimal
	MinOrderValue  decimal.Decimal
	ExpirationDate time.Time
	UsageLimit     int
}

// CouponAPI is the coupon surface of the ordering backend.
type CouponAPI interface {
	// Validate submits a code together with the raw cart subtotal and
	// returns the granted discount. A rejected code comes back as a
	// BackendError whose message is shown to the user as-is.
	Validate(ctx context.Context, code string, cartTotal decimal.Decimal) (*entity.Coupon, error)

	// Create creates a coupon (admin only).
	Create(ctx context.Context, input CreateCouponInput) error
}
