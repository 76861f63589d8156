package backend

import (
	"context"
	"time"

	"crave/internal/domain/entity"
	"crave/internal/domain/service"
)

type authAPI struct {
	client *Client
}

// NewAuthAPI returns the session-lifecycle surface of the gateway.
func NewAuthAPI(client *Client) service.AuthAPI {
	return &authAPI{client: client}
}

// userPayload mirrors the backend's user document.
type userPayload struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Coins int64  `json:"coins"`
}

func (p userPayload) toEntity() *entity.User {
	return &entity.User{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      entity.Role(p.Role),
		Coins:     p.Coins,
		UpdatedAt: time.Now(),
	}
}

func (a *authAPI) Login(ctx context.Context, email, password string) (*entity.User, error) {
	var payload userPayload
	err := a.client.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (a *authAPI) Register(ctx context.Context, input service.RegisterInput) (*entity.User, error) {
	var payload userPayload
	err := a.client.post(ctx, "/auth/register", map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (a *authAPI) Logout(ctx context.Context) error {
	if err := a.client.post(ctx, "/auth/logout", nil, nil); err != nil {
		return err
	}
	a.client.clearSession()

	return nil
}

func (a *authAPI) Profile(ctx context.Context) (*entity.User, error) {
	var payload userPayload
	if err := a.client.get(ctx, "/auth/profile", &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
