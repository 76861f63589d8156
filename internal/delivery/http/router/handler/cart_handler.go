package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers. Every mutation
// responds with the refreshed cart view.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// View returns the current cart with its price summary.
func (h *CartHandler) View(c echo.Context) error {
	view, err := h.uc.View(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem adds or merges a line into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.AddItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added")
}

// RemoveItem drops a line from the cart. The variant comes as a query
// parameter since it is part of the line identity.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.uc.RemoveItem(c.Request().Context(), c.Param("id"), c.QueryParam("variant"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed")
}

// Clear empties the cart and resets the redemption choices.
func (h *CartHandler) Clear(c echo.Context) error {
	view, err := h.uc.Clear(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart cleared")
}

// couponInput is the apply-coupon request body.
type couponInput struct {
	Code string `json:"code" validate:"required"`
}

// ApplyCoupon validates a coupon against the backend and applies it.
func (h *CartHandler) ApplyCoupon(c echo.Context) error {
	var input *couponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.ApplyCoupon(c.Request().Context(), input.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Coupon applied")
}

// RemoveCoupon drops the active coupon.
func (h *CartHandler) RemoveCoupon(c echo.Context) error {
	view, err := h.uc.RemoveCoupon(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Coupon removed")
}

// useCoinsInput is the coin-redemption toggle request body.
type useCoinsInput struct {
	UseCoins bool `json:"useCoins"`
}

// SetUseCoins toggles loyalty-coin redemption.
func (h *CartHandler) SetUseCoins(c echo.Context) error {
	var input *useCoinsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coin toggle input")
	}

	view, err := h.uc.SetUseCoins(c.Request().Context(), input.UseCoins)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Coin redemption updated")
}
