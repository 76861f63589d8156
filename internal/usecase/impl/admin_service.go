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

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminAPI  service.AdminAPI
	couponAPI service.CouponAPI
	store     *state.Store
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	adminAPI service.AdminAPI,
	couponAPI service.CouponAPI,
	store *state.Store,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		adminAPI:  adminAPI,
		couponAPI: couponAPI,
		store:     store,
		logger:    logger,
	}
}

// requireAdmin gates every console operation on the session role. The
// backend enforces the same rule independently.
func (srv *adminService) requireAdmin() error {
	user, ok := srv.store.User()
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	if !user.Role.IsAdmin() {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// Dashboard fetches the aggregated analytics report.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.AdminDashboard, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	analytics, err := srv.adminAPI.Analytics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch analytics")
	}

	return &usecase.AdminDashboard{Analytics: analytics}, nil
}

// ListUsers lists the platform user base.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	users, err := srv.adminAPI.Users(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch users")
	}

	return users, nil
}

// ListTickets lists open support tickets.
func (srv *adminService) ListTickets(ctx context.Context) ([]*service.SupportTicket, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}

	tickets, err := srv.adminAPI.Tickets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch support tickets")
	}

	return tickets, nil
}

// SetCommission updates the platform commission rate.
func (srv *adminService) SetCommission(ctx context.Context, input *usecase.SetCommissionInput) error {
	if err := srv.requireAdmin(); err != nil {
		return err
	}

	srv.logger.Info("Updating commission rate", "rate", input.Rate.String())

	if err := srv.adminAPI.UpdateCommission(ctx, input.Rate); err != nil {
		return errors.Wrap(err, "failed to update commission rate")
	}

	return nil
}

// CreateCoupon creates a coupon.
func (srv *adminService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) error {
	if err := srv.requireAdmin(); err != nil {
		return err
	}

	srv.logger.Info("Creating coupon", "code", input.Code)

	err := srv.couponAPI.Create(ctx, service.CreateCouponInput{
		Code:           input.Code,
		DiscountType:   input.DiscountType,
		DiscountAmount: input.DiscountAmount,
		MinOrderValue:  input.MinOrderValue,
		ExpirationDate: input.ExpirationDate,
		UsageLimit:     input.UsageLimit,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create coupon")
	}

	return nil
}
