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

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderAPI service.OrderAPI
	qr       service.QRCodeService
	store    *state.Store
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderAPI service.OrderAPI,
	qr service.QRCodeService,
	store *state.Store,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderAPI: orderAPI,
		qr:       qr,
		store:    store,
		logger:   logger,
	}
}

// History returns the session user's past orders.
func (srv *orderService) History(ctx context.Context) ([]*entity.Order, error) {
	if _, ok := srv.store.User(); !ok {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	orders, err := srv.orderAPI.MyOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch order history")
	}

	return orders, nil
}

// Details returns one order with its pickup QR code.
func (srv *orderService) Details(ctx context.Context, orderID string) (*usecase.OrderDetails, error) {
	if _, ok := srv.store.User(); !ok {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	order, err := srv.orderAPI.OrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch order")
	}

	details := &usecase.OrderDetails{Order: order}
	if png, err := srv.qr.GeneratePickupQR(order.ID, order.OrderNumber); err != nil {
		srv.logger.Warn("Pickup QR generation failed", "orderID", order.ID, "error", err)
	} else {
		details.PickupQR = png
	}

	return details, nil
}
