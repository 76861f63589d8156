package usecase

import (
	"context"

	"crave/internal/domain/entity"
)

// OrderUsecase defines the interface for the customer-facing order
// history and detail views.
type OrderUsecase interface {
	// History returns the session user's past orders, newest first.
	History(ctx context.Context) ([]*entity.Order, error)

	// Details returns one order together with its pickup QR code.
	Details(ctx context.Context, orderID string) (*OrderDetails, error)
}

// --- Output DTOs ---

// OrderDetails is an order plus the rendered pickup QR code.
type OrderDetails struct {
	Order    *entity.Order `json:"order"`
	PickupQR []byte        `json:"pickupQr,omitempty"` // PNG
}
