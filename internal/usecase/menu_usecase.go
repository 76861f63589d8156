package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// MenuUsecase defines the interface for menu browsing and review operations.
type MenuUsecase interface {
	// Browse returns the menu filtered by the query; the filter runs
	// locally against the last fetched menu.
	Browse(ctx context.Context, query *BrowseQuery) (*MenuView, error)

	// ItemDetails returns a single menu item with its reviews.
	ItemDetails(ctx context.Context, menuItemID string) (*entity.MenuItem, error)

	// CreateMenuItem creates a menu item (admin only) and appends it to
	// the cached menu optimistically.
	CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error)

	// SubmitReview appends a review to a menu item and reloads the menu.
	SubmitReview(ctx context.Context, input *SubmitReviewInput) error
}

// --- Input DTOs ---

// BrowseQuery defines the local menu filter.
type BrowseQuery struct {
	Search   string `json:"search" query:"search"`
	Category string `json:"category" query:"category"`
}

// CreateMenuItemInput defines the data required to create a menu item.
type CreateMenuItemInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
}

// SubmitReviewInput defines the data required to review a menu item.
type SubmitReviewInput struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment"`
}

// --- Output DTOs ---

// MenuView is the filtered menu plus the distinct category list for the
// category tabs.
type MenuView struct {
	Items      []*entity.MenuItem `json:"items"`
	Categories []string           `json:"categories"`
}
