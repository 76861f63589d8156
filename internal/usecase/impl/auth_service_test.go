package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	mockRepo "crave/internal/mocks/repository"
	mockService "crave/internal/mocks/service"
	"crave/internal/state"
	"crave/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service usecase.AuthUsecase
	authAPI *mockService.MockAuthAPI
	session *mockService.MockSessionInspector
	repo    *mockRepo.MockSnapshotRepository
	store   *state.Store
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	repo := mockRepo.NewMockSnapshotRepository(t)
	authAPI := mockService.NewMockAuthAPI(t)
	session := mockService.NewMockSessionInspector(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := state.New(repo, logger)
	svc := NewAuthService(authAPI, session, store, logger)

	return authServiceFixtures{
		service: svc,
		authAPI: authAPI,
		session: session,
		repo:    repo,
		store:   store,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	user := &entity.User{
		ID: "u1", Name: "Alice", Email: "alice@example.com",
		Role: entity.RoleCustomer, Coins: 120,
	}

	fx.authAPI.EXPECT().Login(mock.Anything, "alice@example.com", "hunter22").Return(user, nil)
	fx.repo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil)
	fx.session.EXPECT().SessionExpiresAt().Return(expiry, true)

	view, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", view.UserID)
	assert.Equal(t, entity.RoleCustomer, view.Role)
	assert.Equal(t, int64(120), view.Coins)
	require.NotNil(t, view.ExpiresAt)
	assert.Equal(t, expiry, *view.ExpiresAt)

	stored, ok := fx.store.User()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", stored.Email)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	fx := createTestAuthService(t)

	backendErr := domainerrors.NewBackendError(401, "Invalid email or password")
	fx.authAPI.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return(nil, backendErr)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")

	_, ok := fx.store.User()
	assert.False(t, ok)
}

func TestAuthService_Register_StoresSnapshot(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: entity.RoleCustomer}

	fx.authAPI.EXPECT().
		Register(mock.Anything, service.RegisterInput{
			Name: "Bob", Email: "bob@example.com", Password: "secret99",
		}).
		Return(user, nil)
	fx.repo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil)
	fx.session.EXPECT().SessionExpiresAt().Return(time.Time{}, false)

	view, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret99",
	})
	require.NoError(t, err)

	assert.Equal(t, "u2", view.UserID)
	assert.Nil(t, view.ExpiresAt)
}

func TestAuthService_Logout_ClearsUserAndCart(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.repo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil)
	require.NoError(t, fx.store.SetUser(ctx, &entity.User{ID: "u1", Role: entity.RoleCustomer}))
	fx.repo.EXPECT().SaveCart(mock.Anything, mock.Anything).Return(nil)
	require.NoError(t, fx.store.AddCartItem(ctx, entity.CartItem{MenuItemID: "burger", Quantity: 1}))

	fx.authAPI.EXPECT().Logout(mock.Anything).Return(nil)
	fx.repo.EXPECT().DeleteUser(mock.Anything).Return(nil)
	fx.repo.EXPECT().DeleteCart(mock.Anything).Return(nil)

	require.NoError(t, fx.service.Logout(ctx))

	_, ok := fx.store.User()
	assert.False(t, ok)
	assert.True(t, fx.store.Cart().IsEmpty())
}

func TestAuthService_CurrentSession_NotAuthenticated(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.CurrentSession(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthService_RefreshProfile_UpdatesCoins(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.repo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil).Times(2)
	require.NoError(t, fx.store.SetUser(ctx, &entity.User{ID: "u1", Role: entity.RoleCustomer, Coins: 10}))

	fx.authAPI.EXPECT().Profile(mock.Anything).Return(&entity.User{
		ID: "u1", Role: entity.RoleCustomer, Coins: 63,
	}, nil)
	fx.session.EXPECT().SessionExpiresAt().Return(time.Time{}, false)

	view, err := fx.service.RefreshProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(63), view.Coins)

	stored, ok := fx.store.User()
	require.True(t, ok)
	assert.Equal(t, int64(63), stored.Coins)
}

func TestAuthService_RefreshProfile_RequiresSession(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.RefreshProfile(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthService_Logout_BackendFailureKeepsState(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.repo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil)
	require.NoError(t, fx.store.SetUser(ctx, &entity.User{ID: "u1", Role: entity.RoleCustomer}))

	fx.authAPI.EXPECT().Logout(mock.Anything).Return(errors.New("backend unreachable"))

	err := fx.service.Logout(ctx)
	require.Error(t, err)

	_, ok := fx.store.User()
	assert.True(t, ok)
}
