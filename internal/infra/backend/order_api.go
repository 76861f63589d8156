package backend

import (
	"context"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/service"

	"github.com/shopspring/decimal"
)

type orderAPI struct {
	client *Client
}

// NewOrderAPI returns the order surface of the gateway.
func NewOrderAPI(client *Client) service.OrderAPI {
	return &orderAPI{client: client}
}

// orderItemPayload mirrors one populated line of a backend order
// document. The backend populates the referenced menu item with at least
// its name for display.
type orderItemPayload struct {
	MenuItem struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"menuItem"`
	Quantity        int             `json:"quantity"`
	Variant         string          `json:"variant"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

type orderPayload struct {
	ID          string `json:"_id"`
	OrderNumber string `json:"orderNumber"`
	Customer    struct {
		Name string `json:"name"`
	} `json:"customer"`
	Items               []orderItemPayload `json:"items"`
	TotalAmount         decimal.Decimal    `json:"totalAmount"`
	Status              string             `json:"status"`
	CreatedAt           time.Time          `json:"createdAt"`
	EstimatedPickupTime time.Time          `json:"estimatedPickupTime"`
}

func (p orderPayload) toEntity() *entity.Order {
	order := &entity.Order{
		ID:                  p.ID,
		OrderNumber:         p.OrderNumber,
		CustomerName:        p.Customer.Name,
		TotalAmount:         p.TotalAmount,
		Status:              entity.OrderStatus(p.Status),
		CreatedAt:           p.CreatedAt,
		EstimatedPickupTime: p.EstimatedPickupTime,
	}
	for _, item := range p.Items {
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID:      item.MenuItem.ID,
			Name:            item.MenuItem.Name,
			Variant:         item.Variant,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return order
}

func toOrderEntities(payload []orderPayload) []*entity.Order {
	orders := make([]*entity.Order, 0, len(payload))
	for _, p := range payload {
		orders = append(orders, p.toEntity())
	}

	return orders
}

func (o *orderAPI) CreatePaymentIntent(ctx context.Context, input service.CreateIntentInput) (*service.PaymentSession, error) {
	items := make([]map[string]any, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, map[string]any{
			"menuItem": item.MenuItemID,
			"quantity": item.Quantity,
			"price":    item.Price,
		})
	}

	body := map[string]any{
		"items":    items,
		"useCoins": input.UseCoins,
	}
	// The backend treats a missing couponCode as "no coupon"; an empty
	// string would fail its lookup.
	if input.CouponCode != "" {
		body["couponCode"] = input.CouponCode
	}

	var resp struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := o.client.post(ctx, "/orders/create-payment-intent", body, &resp); err != nil {
		return nil, err
	}

	return &service.PaymentSession{ClientSecret: resp.ClientSecret}, nil
}

func (o *orderAPI) ConfirmOrder(ctx context.Context, input service.ConfirmOrderInput) (*entity.Order, error) {
	items := make([]map[string]any, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, map[string]any{
			"menuItem":        item.MenuItemID,
			"quantity":        item.Quantity,
			"variant":         item.Variant,
			"priceAtPurchase": item.PriceAtPurchase,
		})
	}

	var payload orderPayload
	err := o.client.post(ctx, "/orders/confirm", map[string]any{
		"paymentIntentId": input.PaymentIntentID,
		"items":           items,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (o *orderAPI) MyOrders(ctx context.Context) ([]*entity.Order, error) {
	var payload []orderPayload
	if err := o.client.get(ctx, "/orders/myorders", &payload); err != nil {
		return nil, err
	}

	return toOrderEntities(payload), nil
}

func (o *orderAPI) OrderByID(ctx context.Context, id string) (*entity.Order, error) {
	var payload orderPayload
	if err := o.client.get(ctx, "/orders/"+id, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (o *orderAPI) LiveQueue(ctx context.Context) ([]*entity.Order, error) {
	var payload []orderPayload
	if err := o.client.get(ctx, "/orders/live-queue", &payload); err != nil {
		return nil, err
	}

	return toOrderEntities(payload), nil
}

func (o *orderAPI) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	var payload orderPayload
	err := o.client.put(ctx, "/orders/"+orderID+"/status", map[string]string{
		"status": status.String(),
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
