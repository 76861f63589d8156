// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"crave/internal/domain/entity"
)

// AuthUsecase defines the interface for session-related business operations.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*SessionView, error)
	Register(ctx context.Context, input *RegisterInput) (*SessionView, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*SessionView, error)
	RefreshProfile(ctx context.Context) (*SessionView, error)
}

// --- Input DTOs ---

// LoginInput defines the data required to authenticate against the backend.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to create a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// --- Output DTOs ---

// SessionView is the authenticated-user snapshot rendered by the navbar
// and used by the role gates.
type SessionView struct {
	UserID    string      `json:"userId"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	Coins     int64       `json:"coins"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"` // session-cookie expiry, when the backend exposes it
}
