package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the finite, forward-only progression of a confirmed order.
type OrderStatus string

const (
	// StatusPaid means the payment was captured and the order is waiting for the kitchen.
	StatusPaid OrderStatus = "Paid"
	// StatusPreparing means the kitchen has started cooking.
	StatusPreparing OrderStatus = "Preparing"
	// StatusReady means the order is waiting at the counter for pickup.
	StatusReady OrderStatus = "Ready"
	// StatusPickedUp is the terminal state: the customer has collected the order.
	StatusPickedUp OrderStatus = "Picked_Up"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPaid, StatusPreparing, StatusReady, StatusPickedUp:
		return true
	default:
		return false
	}
}

// Next returns the immediately following status. ok is false for the
// terminal state.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	switch s {
	case StatusPaid:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusPickedUp, true
	default:
		return "", false
	}
}

// CanProgressTo reports whether moving to target is a legal transition.
// Only the single adjacent forward step is allowed; no skipping, no
// backward moves.
func (s OrderStatus) CanProgressTo(target OrderStatus) bool {
	next, ok := s.Next()

	return ok && next == target
}

// OrderItem is one line of a confirmed order. The price is the one frozen
// at order-confirmation time; it is never recomputed from live menu prices.
type OrderItem struct {
	MenuItemID      string
	Name            string
	Variant         string
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// Order is a backend-owned record of a confirmed purchase.
type Order struct {
	ID                  string
	OrderNumber         string // Short human-friendly number shown on the staff cards and the pickup ticket.
	CustomerName        string
	Items               []OrderItem
	TotalAmount         decimal.Decimal
	Status              OrderStatus
	CreatedAt           time.Time
	EstimatedPickupTime time.Time
}
