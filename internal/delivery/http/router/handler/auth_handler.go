// Package handler contains the HTTP handlers for the kiosk API.
package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the sign-in request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}

// Register handles the account creation request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Account registered successfully")
}

// Logout ends the device session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Session returns the current session view for the header bar.
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := h.uc.CurrentSession(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// RefreshProfile re-fetches the profile, picking up the server-side coin
// balance.
func (h *AuthHandler) RefreshProfile(c echo.Context) error {
	session, err := h.uc.RefreshProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Profile refreshed")
}
