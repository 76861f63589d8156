// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	"crave/internal/state"
	"crave/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authAPI service.AuthAPI
	session service.SessionInspector
	store   *state.Store
	logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	authAPI service.AuthAPI,
	session service.SessionInspector,
	store *state.Store,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		authAPI: authAPI,
		session: session,
		store:   store,
		logger:  logger,
	}
}

// Login authenticates against the backend and stores the user snapshot.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionView, error) {
	srv.logger.Info("Logging in", "email", input.Email)

	user, err := srv.authAPI.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to login")
	}

	if err := srv.store.SetUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store user snapshot")
	}

	return srv.sessionView(user), nil
}

// Register creates an account and stores the authenticated snapshot.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionView, error) {
	srv.logger.Info("Registering account", "email", input.Email)

	user, err := srv.authAPI.Register(ctx, service.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register")
	}

	if err := srv.store.SetUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store user snapshot")
	}

	return srv.sessionView(user), nil
}

// Logout invalidates the backend session, then clears the local user
// snapshot and the cart. The cart clear is an explicit sequential step of
// this operation, not a side effect wired elsewhere.
func (srv *authService) Logout(ctx context.Context) error {
	srv.logger.Info("Logging out")

	if err := srv.authAPI.Logout(ctx); err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	if err := srv.store.ClearUser(ctx); err != nil {
		return errors.Wrap(err, "failed to clear user snapshot")
	}
	if err := srv.store.ClearCart(ctx); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// CurrentSession returns the cached session snapshot.
func (srv *authService) CurrentSession(_ context.Context) (*usecase.SessionView, error) {
	user, ok := srv.store.User()
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	return srv.sessionView(user), nil
}

// RefreshProfile refetches the authenticated user, primarily to pick up
// a coin balance changed on another device.
func (srv *authService) RefreshProfile(ctx context.Context) (*usecase.SessionView, error) {
	if _, ok := srv.store.User(); !ok {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	user, err := srv.authAPI.Profile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh profile")
	}

	if err := srv.store.SetUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store user snapshot")
	}

	return srv.sessionView(user), nil
}

func (srv *authService) sessionView(user *entity.User) *usecase.SessionView {
	view := &usecase.SessionView{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Coins:  user.Coins,
	}
	if expiresAt, ok := srv.session.SessionExpiresAt(); ok {
		view.ExpiresAt = &expiresAt
	}

	return view
}
