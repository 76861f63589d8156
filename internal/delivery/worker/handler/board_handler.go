// Package handler contains the handlers for the kitchen display board.
package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/domain/entity"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BoardHandler serves the wall-mounted kitchen display. The display has
// no operator session; it acts with the kitchen role for the whole
// process lifetime.
type BoardHandler struct {
	uc     usecase.QueueUsecase
	role   entity.Role
	logger *slog.Logger
}

// NewBoardHandler is the constructor for BoardHandler, injected by Fx.
func NewBoardHandler(uc usecase.QueueUsecase, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		uc:     uc,
		role:   entity.RoleKitchenManager,
		logger: logger,
	}
}

// Board returns the last polled queue snapshot.
func (h *BoardHandler) Board(c echo.Context) error {
	view, err := h.uc.Snapshot(c.Request().Context(), h.role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Refresh forces an immediate queue fetch.
func (h *BoardHandler) Refresh(c echo.Context) error {
	view, err := h.uc.Refresh(c.Request().Context(), h.role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Queue refreshed")
}

// Advance moves an order one status step forward within the kitchen's
// capability.
func (h *BoardHandler) Advance(c echo.Context) error {
	view, err := h.uc.Advance(c.Request().Context(), h.role, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Order advanced")
}
