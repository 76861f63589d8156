package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout flow handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// Begin starts a checkout session from the current cart.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	view, err := h.uc.Begin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Checkout started")
}

// Pay submits a payment method against the active session. A declined
// card is not an error: the view carries the provider message and the
// session stays open for another attempt.
func (h *CheckoutHandler) Pay(c echo.Context) error {
	var input *usecase.PayInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Pay(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Current returns the active checkout session without advancing it.
func (h *CheckoutHandler) Current(c echo.Context) error {
	view, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Abandon discards the active session, keeping the cart.
func (h *CheckoutHandler) Abandon(c echo.Context) error {
	if err := h.uc.Abandon(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Checkout abandoned")
}
