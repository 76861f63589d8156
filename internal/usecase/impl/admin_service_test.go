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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	adminAPI  *mockService.MockAdminAPI
	couponAPI *mockService.MockCouponAPI
	store     *state.Store
}

func createTestAdminService(t *testing.T, role entity.Role) adminServiceFixtures {
	repo := mockRepo.NewMockSnapshotRepository(t)
	repo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil).Maybe()

	adminAPI := mockService.NewMockAdminAPI(t)
	couponAPI := mockService.NewMockCouponAPI(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := state.New(repo, logger)

	if role != "" {
		require.NoError(t, store.SetUser(context.Background(), &entity.User{ID: "u1", Role: role}))
	}

	return adminServiceFixtures{
		service:   NewAdminService(adminAPI, couponAPI, store, logger),
		adminAPI:  adminAPI,
		couponAPI: couponAPI,
		store:     store,
	}
}

func TestAdminService_Dashboard_Success(t *testing.T) {
	fx := createTestAdminService(t, entity.RoleSuperAdmin)

	analytics := &service.Analytics{
		TotalRevenue:   decimal.NewFromInt(125000),
		TotalOrders:    420,
		TotalUsers:     300,
		CommissionRate: decimal.NewFromFloat(0.1),
	}
	fx.adminAPI.EXPECT().Analytics(mock.Anything).Return(analytics, nil)

	dashboard, err := fx.service.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 420, dashboard.Analytics.TotalOrders)
}

func TestAdminService_Dashboard_ForbiddenForCustomer(t *testing.T) {
	fx := createTestAdminService(t, entity.RoleCustomer)

	_, err := fx.service.Dashboard(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_Dashboard_RequiresSession(t *testing.T) {
	fx := createTestAdminService(t, "")

	_, err := fx.service.Dashboard(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAdminService_StaffRolesAreNotAdmins(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleKitchenManager, entity.RoleCounterStaff} {
		fx := createTestAdminService(t, role)

		_, err := fx.service.ListUsers(context.Background())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden, "role %s", role)
	}
}

func TestAdminService_CreateCoupon_PassesPayloadThrough(t *testing.T) {
	fx := createTestAdminService(t, entity.RoleSuperAdmin)

	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	fx.couponAPI.EXPECT().
		Create(mock.Anything, service.CreateCouponInput{
			Code:           "SAVE50",
			DiscountType:   "FIXED",
			DiscountAmount: decimal.NewFromInt(50),
			MinOrderValue:  decimal.NewFromInt(500),
			ExpirationDate: expiry,
			UsageLimit:     100,
		}).
		Return(nil)

	err := fx.service.CreateCoupon(context.Background(), &usecase.CreateCouponInput{
		Code:           "SAVE50",
		DiscountType:   "FIXED",
		DiscountAmount: decimal.NewFromInt(50),
		MinOrderValue:  decimal.NewFromInt(500),
		ExpirationDate: expiry,
		UsageLimit:     100,
	})
	require.NoError(t, err)
}

func TestAdminService_SetCommission(t *testing.T) {
	fx := createTestAdminService(t, entity.RoleSuperAdmin)

	fx.adminAPI.EXPECT().
		UpdateCommission(mock.Anything, mock.MatchedBy(func(rate decimal.Decimal) bool {
			return rate.Equal(decimal.NewFromFloat(0.15))
		})).
		Return(nil)

	err := fx.service.SetCommission(context.Background(), &usecase.SetCommissionInput{
		Rate: decimal.NewFromFloat(0.15),
	})
	require.NoError(t, err)
}

func TestAdminService_ListTickets(t *testing.T) {
	fx := createTestAdminService(t, entity.RoleSuperAdmin)

	fx.adminAPI.EXPECT().Tickets(mock.Anything).Return([]*service.SupportTicket{
		{ID: "t1", Subject: "Refund request", Status: "open"},
	}, nil)

	tickets, err := fx.service.ListTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Refund request", tickets[0].Subject)
}
