package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review is a customer review on a menu item. Reviews are appended
// server-side; the kiosk never mutates them.
type Review struct {
	UserID    string
	Name      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// MenuItem is a backend-owned menu record, read-only on this side except
// for the optimistic append of a newly created item in the admin console.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Category    string
	Image       string
	Price       decimal.Decimal
	Rating      float64
	NumReviews  int
	Reviews     []Review
}
