package impl

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	"crave/internal/state"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var decimalTen = decimal.NewFromInt(10)

// checkoutSession is the single in-progress checkout of the device. The
// line items, the charge amount and the coins to spend are frozen when
// the payment session is obtained; later cart or balance changes do not
// leak into a session already under way.
type checkoutSession struct {
	id           string
	phase        usecase.CheckoutPhase
	clientSecret string
	items        []service.ConfirmItem
	amount       decimal.Decimal
	coinsSpent   decimal.Decimal
	errorMessage string
	confirmation *usecase.ConfirmationView
}

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	orderAPI service.OrderAPI
	payment  service.PaymentService
	qr       service.QRCodeService
	cart     usecase.CartUsecase
	store    *state.Store
	logger   *slog.Logger

	mu       sync.Mutex
	session  *checkoutSession
	inFlight bool
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	orderAPI service.OrderAPI,
	payment service.PaymentService,
	qr service.QRCodeService,
	cart usecase.CartUsecase,
	store *state.Store,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		orderAPI: orderAPI,
		payment:  payment,
		qr:       qr,
		cart:     cart,
		store:    store,
		logger:   logger,
	}
}

// Begin freezes the cart and obtains a payment session. A failure leaves
// no session behind; the user is back at the cart, which is untouched.
func (srv *checkoutService) Begin(ctx context.Context) (*usecase.CheckoutView, error) {
	if _, ok := srv.store.User(); !ok {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	cartView, err := srv.cart.View(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}
	if len(cartView.Items) == 0 {
		return nil, errors.WithStack(domainerrors.ErrCartEmpty)
	}

	session := &checkoutSession{
		id:         uuid.NewString(),
		phase:      usecase.PhaseIntentRequested,
		amount:     cartView.Summary.FinalTotal,
		coinsSpent: cartView.Summary.CoinDiscount,
		items:      make([]service.ConfirmItem, 0, len(cartView.Items)),
	}
	intentInput := service.CreateIntentInput{UseCoins: cartView.UseCoins}
	if cartView.Coupon != nil {
		intentInput.CouponCode = cartView.Coupon.Code
	}
	for _, item := range cartView.Items {
		session.items = append(session.items, service.ConfirmItem{
			MenuItemID:      item.MenuItemID,
			Quantity:        item.Quantity,
			Variant:         item.Variant,
			PriceAtPurchase: item.UnitPrice,
		})
		intentInput.Items = append(intentInput.Items, service.IntentItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.UnitPrice,
		})
	}

	srv.mu.Lock()
	if srv.inFlight {
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrCheckoutBusy)
	}
	srv.inFlight = true
	srv.session = session
	srv.mu.Unlock()

	srv.logger.Info("Checkout started",
		"sessionID", session.id,
		"amount", session.amount.String(),
		"coinsSpent", session.coinsSpent.String(),
	)

	paymentSession, err := srv.orderAPI.CreatePaymentIntent(ctx, intentInput)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.inFlight = false

	if err != nil {
		// Intent failure aborts the session entirely.
		srv.session = nil

		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	session.clientSecret = paymentSession.ClientSecret
	session.phase = usecase.PhaseAwaitingPayment

	return session.view(), nil
}

// Pay confirms the charge and, on success, persists the order, reconciles
// the coin balance and clears the cart. A declined attempt keeps the
// session alive for a retry with the provider message attached.
func (srv *checkoutService) Pay(ctx context.Context, input *usecase.PayInput) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	session := srv.session
	switch {
	case srv.inFlight:
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrCheckoutBusy)
	case session == nil || session.phase != usecase.PhaseAwaitingPayment:
		srv.mu.Unlock()

		return nil, errors.WithStack(domainerrors.ErrNoCheckoutSession)
	}
	srv.inFlight = true
	session.phase = usecase.PhasePaymentConfirming
	session.errorMessage = ""
	srv.mu.Unlock()

	result, err := srv.payment.Confirm(ctx, session.clientSecret, input.PaymentMethodID)
	if err != nil {
		srv.settle(session, usecase.PhaseAwaitingPayment, "")

		return nil, errors.Wrap(err, "failed to confirm payment")
	}
	if result.Outcome != service.PaymentSucceeded {
		// Declined or still pending: stay on the payment form, message inline.
		srv.settle(session, usecase.PhaseAwaitingPayment, result.Message)

		return session.view(), nil
	}

	srv.mu.Lock()
	session.phase = usecase.PhaseOrderConfirming
	srv.mu.Unlock()

	order, err := srv.orderAPI.ConfirmOrder(ctx, service.ConfirmOrderInput{
		PaymentIntentID: result.IntentID,
		Items:           session.items,
	})
	if err != nil {
		// The charge went through but no order exists. The session cannot
		// be retried against the same payment; drop it and surface the error.
		srv.mu.Lock()
		srv.session = nil
		srv.inFlight = false
		srv.mu.Unlock()

		return nil, errors.Wrap(err, "failed to confirm order")
	}

	confirmation := &usecase.ConfirmationView{
		OrderID:             order.ID,
		OrderNumber:         order.OrderNumber,
		FinalTotal:          order.TotalAmount,
		EstimatedPickupTime: order.EstimatedPickupTime,
	}

	// Reconcile the coin balance: one coin earned per 10 spent, the coins
	// spent were frozen when the payment session was created.
	if user, ok := srv.store.User(); ok {
		earned := order.TotalAmount.Div(decimalTen).Floor()
		newBalance := decimal.NewFromInt(user.Coins).
			Sub(session.coinsSpent).
			Add(earned).
			Floor().
			IntPart()
		if newBalance < 0 {
			newBalance = 0
		}

		if err := srv.store.UpdateCoins(ctx, newBalance); err != nil {
			srv.logger.Error("Coin reconciliation failed", "error", err)
		}
		confirmation.CoinsEarned = earned.IntPart()
		confirmation.CoinBalance = newBalance
	}

	if png, err := srv.qr.GeneratePickupQR(order.ID, order.OrderNumber); err != nil {
		srv.logger.Warn("Pickup QR generation failed", "orderID", order.ID, "error", err)
	} else {
		confirmation.PickupQR = png
	}

	// The purchase is complete; the cart (and its coupon and coin toggle)
	// starts fresh.
	if _, err := srv.cart.Clear(ctx); err != nil {
		srv.logger.Error("Cart clear after confirmation failed", "error", err)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.inFlight = false
	session.phase = usecase.PhaseConfirmed
	session.confirmation = confirmation

	srv.logger.Info("Order confirmed",
		"orderID", order.ID,
		"orderNumber", order.OrderNumber,
		"total", order.TotalAmount.String(),
	)

	return session.view(), nil
}

// Current reports the session state without advancing it.
func (srv *checkoutService) Current(_ context.Context) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.session == nil {
		return &usecase.CheckoutView{Phase: usecase.PhaseIdle}, nil
	}

	return srv.session.view(), nil
}

// Abandon discards the session. Blocked while a payment or confirmation
// is in flight.
func (srv *checkoutService) Abandon(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.inFlight {
		return errors.WithStack(domainerrors.ErrCheckoutBusy)
	}
	srv.session = nil

	return nil
}

func (srv *checkoutService) settle(session *checkoutSession, phase usecase.CheckoutPhase, message string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.inFlight = false
	session.phase = phase
	session.errorMessage = message
}

func (s *checkoutSession) view() *usecase.CheckoutView {
	return &usecase.CheckoutView{
		SessionID:    s.id,
		Phase:        s.phase,
		Amount:       s.amount,
		ErrorMessage: s.errorMessage,
		Confirmation: s.confirmation,
	}
}
