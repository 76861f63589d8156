package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/state"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QueueHandler holds dependencies for the staff live-queue handlers.
// The acting role always comes from the device session, never from the
// request.
type QueueHandler struct {
	uc     usecase.QueueUsecase
	store  *state.Store
	logger *slog.Logger
}

// NewQueueHandler is the constructor for QueueHandler, injected by Fx.
func NewQueueHandler(uc usecase.QueueUsecase, store *state.Store, logger *slog.Logger) *QueueHandler {
	return &QueueHandler{
		uc:     uc,
		store:  store,
		logger: logger,
	}
}

// Board returns the last polled queue snapshot arranged for the session
// role. Opening the board starts the poller; Start is a no-op when it is
// already running.
func (h *QueueHandler) Board(c echo.Context) error {
	user, ok := h.store.User()
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	if err := h.uc.Start(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Snapshot(c.Request().Context(), user.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Refresh forces an immediate queue fetch.
func (h *QueueHandler) Refresh(c echo.Context) error {
	user, ok := h.store.User()
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	view, err := h.uc.Refresh(c.Request().Context(), user.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Queue refreshed")
}

// Advance moves an order one status step forward.
func (h *QueueHandler) Advance(c echo.Context) error {
	user, ok := h.store.User()
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	view, err := h.uc.Advance(c.Request().Context(), user.Role, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Order advanced")
}
