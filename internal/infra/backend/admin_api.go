package backend

import (
	"context"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/service"

	"github.com/shopspring/decimal"
)

type adminAPI struct {
	client *Client
}

// NewAdminAPI returns the super-admin surface of the gateway.
func NewAdminAPI(client *Client) service.AdminAPI {
	return &adminAPI{client: client}
}

func (a *adminAPI) Analytics(ctx context.Context) (*service.Analytics, error) {
	var resp struct {
		TotalRevenue    decimal.Decimal            `json:"totalRevenue"`
		TotalOrders     int                        `json:"totalOrders"`
		TotalUsers      int                        `json:"totalUsers"`
		CommissionRate  decimal.Decimal            `json:"commissionRate"`
		RevenueByDay    map[string]decimal.Decimal `json:"revenueByDay"`
		TopSellingItems []string                   `json:"topSellingItems"`
	}
	if err := a.client.get(ctx, "/admin/analytics", &resp); err != nil {
		return nil, err
	}

	return &service.Analytics{
		TotalRevenue:    resp.TotalRevenue,
		TotalOrders:     resp.TotalOrders,
		TotalUsers:      resp.TotalUsers,
		CommissionRate:  resp.CommissionRate,
		RevenueByDay:    resp.RevenueByDay,
		TopSellingItems: resp.TopSellingItems,
	}, nil
}

func (a *adminAPI) Users(ctx context.Context) ([]*entity.User, error) {
	var payload []userPayload
	if err := a.client.get(ctx, "/admin/users", &payload); err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(payload))
	for _, p := range payload {
		users = append(users, p.toEntity())
	}

	return users, nil
}

func (a *adminAPI) Tickets(ctx context.Context) ([]*service.SupportTicket, error) {
	var payload []struct {
		ID        string    `json:"_id"`
		Subject   string    `json:"subject"`
		Body      string    `json:"body"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"createdAt"`
	}
	if err := a.client.get(ctx, "/admin/tickets", &payload); err != nil {
		return nil, err
	}

	tickets := make([]*service.SupportTicket, 0, len(payload))
	for _, p := range payload {
		tickets = append(tickets, &service.SupportTicket{
			ID:        p.ID,
			Subject:   p.Subject,
			Body:      p.Body,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}

	return tickets, nil
}

func (a *adminAPI) UpdateCommission(ctx context.Context, rate decimal.Decimal) error {
	return a.client.post(ctx, "/admin/commission", map[string]any{"rate": rate}, nil)
}
