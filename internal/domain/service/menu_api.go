package service

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateMenuItemInput is the payload for the admin menu-creation call.
type CreateMenuItemInput struct {
	Name        string
	Description string
	Category    string
	Image       string
	Price       decimal.Decimal
}

// MenuAPI is the menu surface of the ordering backend.
type MenuAPI interface {
	// ListMenu fetches the full menu.
	ListMenu(ctx context.Context) ([]*entity.MenuItem, error)

	// CreateMenuItem creates a menu item (admin only) and returns the
	// created record for optimistic append.
	CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (*entity.MenuItem, error)

	// CreateReview appends a review to a menu item. Rating is 1..5.
	CreateReview(ctx context.Context, menuItemID string, rating int, comment string) error
}
