package backend

import (
	"context"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/service"

	"github.com/shopspring/decimal"
)

type menuAPI struct {
	client *Client
}

// NewMenuAPI returns the menu surface of the gateway.
func NewMenuAPI(client *Client) service.MenuAPI {
	return &menuAPI{client: client}
}

type reviewPayload struct {
	User      string    `json:"user"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type menuItemPayload struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	NumReviews  int             `json:"numReviews"`
	Reviews     []reviewPayload `json:"reviews"`
}

func (p menuItemPayload) toEntity() *entity.MenuItem {
	item := &entity.MenuItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Price:       p.Price,
		Rating:      p.Rating,
		NumReviews:  p.NumReviews,
	}
	for _, review := range p.Reviews {
		item.Reviews = append(item.Reviews, entity.Review{
			UserID:    review.User,
			Name:      review.Name,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}

	return item
}

func (m *menuAPI) ListMenu(ctx context.Context) ([]*entity.MenuItem, error) {
	var payload []menuItemPayload
	if err := m.client.get(ctx, "/menu", &payload); err != nil {
		return nil, err
	}

	items := make([]*entity.MenuItem, 0, len(payload))
	for _, p := range payload {
		items = append(items, p.toEntity())
	}

	return items, nil
}

func (m *menuAPI) CreateMenuItem(ctx context.Context, input service.CreateMenuItemInput) (*entity.MenuItem, error) {
	var payload menuItemPayload
	err := m.client.post(ctx, "/menu", map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"category":    input.Category,
		"image":       input.Image,
		"price":       input.Price,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (m *menuAPI) CreateReview(ctx context.Context, menuItemID string, rating int, comment string) error {
	return m.client.post(ctx, "/menu/"+menuItemID+"/reviews", map[string]any{
		"rating":  rating,
		"comment": comment,
	}, nil)
}
