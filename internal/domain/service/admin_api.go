package service

import (
	"context"
	"time"

	"crave/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Analytics is the aggregated platform report for the admin overview tab.
type Analytics struct {
	TotalRevenue    decimal.Decimal
	TotalOrders     int
	TotalUsers      int
	CommissionRate  decimal.Decimal
	RevenueByDay    map[string]decimal.Decimal
	TopSellingItems []string
}

// SupportTicket is a customer support ticket surfaced in the admin console.
type SupportTicket struct {
	ID        string
	Subject   string
	Body      string
	Status    string
	CreatedAt time.Time
}

// AdminAPI is the super-admin reporting and configuration surface.
type AdminAPI interface {
	// Analytics fetches the aggregated platform report.
	Analytics(ctx context.Context) (*Analytics, error)

	// Users lists the platform user base.
	Users(ctx context.Context) ([]*entity.User, error)

	// Tickets lists open support tickets.
	Tickets(ctx context.Context) ([]*SupportTicket, error)

	// UpdateCommission sets the platform commission rate.
	UpdateCommission(ctx context.Context, rate decimal.Decimal) error
}
