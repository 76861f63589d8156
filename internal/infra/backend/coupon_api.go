package backend

import (
	"context"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/service"

	"github.com/shopspring/decimal"
)

type couponAPI struct {
	client *Client
}

// NewCouponAPI returns the coupon surface of the gateway.
func NewCouponAPI(client *Client) service.CouponAPI {
	return &couponAPI{client: client}
}

func (c *couponAPI) Validate(ctx context.Context, code string, cartTotal decimal.Decimal) (*entity.Coupon, error) {
	var resp struct {
		Code     string          `json:"code"`
		Discount decimal.Decimal `json:"discount"`
	}
	err := c.client.post(ctx, "/coupons/validate", map[string]any{
		"code":      code,
		"cartTotal": cartTotal,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &entity.Coupon{Code: resp.Code, Discount: resp.Discount}, nil
}

func (c *couponAPI) Create(ctx context.Context, input service.CreateCouponInput) error {
	return c.client.post(ctx, "/coupons", map[string]any{
		"code":           input.Code,
		"discountType":   input.DiscountType,
		"discountAmount": input.DiscountAmount,
		"minOrderValue":  input.MinOrderValue,
		"expirationDate": input.ExpirationDate.Format(time.RFC3339),
		"usageLimit":     input.UsageLimit,
	}, nil)
}
