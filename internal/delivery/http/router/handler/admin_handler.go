package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the super-admin console handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard returns the aggregated platform analytics.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// ListUsers returns every registered user.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// ListTickets returns the open support tickets.
func (h *AdminHandler) ListTickets(c echo.Context) error {
	tickets, err := h.uc.ListTickets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tickets, "")
}

// SetCommission updates the platform commission rate.
func (h *AdminHandler) SetCommission(c echo.Context) error {
	var input *usecase.SetCommissionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid commission input")
	}

	if err := h.uc.SetCommission(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Commission updated")
}

// CreateCoupon creates a platform coupon.
func (h *AdminHandler) CreateCoupon(c echo.Context) error {
	var input *usecase.CreateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CreateCoupon(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Coupon created")
}
