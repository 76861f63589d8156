package usecase

import (
	"context"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/service"

	"github.com/shopspring/decimal"
)

// AdminUsecase defines the interface for the super-admin console.
// Authorization is double-checked here against the session role; the
// backend enforces it again on every call.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*AdminDashboard, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	ListTickets(ctx context.Context) ([]*service.SupportTicket, error)
	SetCommission(ctx context.Context, input *SetCommissionInput) error
	CreateCoupon(ctx context.Context, input *CreateCouponInput) error
}

// --- Input DTOs ---

// SetCommissionInput defines the platform commission update.
type SetCommissionInput struct {
	Rate decimal.Decimal `json:"rate"`
}

// CreateCouponInput defines the data required to create a coupon.
type CreateCouponInput struct {
	Code           string          `json:"code" validate:"required"`
	DiscountType   string          `json:"discountType" validate:"required,oneof=PERCENTAGE FIXED"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	MinOrderValue  decimal.Decimal `json:"minOrderValue"`
	ExpirationDate time.Time       `json:"expirationDate" validate:"required"`
	UsageLimit     int             `json:"usageLimit" validate:"gte=1"`
}

// --- Output DTOs ---

// AdminDashboard is the aggregated analytics report for the overview tab.
type AdminDashboard struct {
	Analytics *service.Analytics `json:"analytics"`
}
