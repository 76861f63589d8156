package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutPhase is the finite progression of a checkout session.
type CheckoutPhase string

const (
	// PhaseIdle means no checkout session exists.
	PhaseIdle CheckoutPhase = "Idle"
	// PhaseIntentRequested means the payment session is being obtained.
	PhaseIntentRequested CheckoutPhase = "IntentRequested"
	// PhaseAwaitingPayment means the payment form may be submitted.
	PhaseAwaitingPayment CheckoutPhase = "AwaitingPayment"
	// PhasePaymentConfirming means a payment confirmation is in flight.
	PhasePaymentConfirming CheckoutPhase = "PaymentConfirming"
	// PhaseOrderConfirming means the charge succeeded and the order record
	// is being persisted.
	PhaseOrderConfirming CheckoutPhase = "OrderConfirming"
	// PhaseConfirmed is the terminal success state.
	PhaseConfirmed CheckoutPhase = "Confirmed"
)

// CheckoutUsecase drives the payment flow as an explicit state machine.
// Begin freezes the cart lines and redemption choices; Pay confirms the
// charge and, on success, persists the order and reconciles the coin
// balance. Only one checkout session exists per device at a time.
type CheckoutUsecase interface {
	// Begin starts a checkout session: freezes the cart, requests a
	// payment session from the backend and moves to AwaitingPayment.
	Begin(ctx context.Context) (*CheckoutView, error)

	// Pay submits a payment method against the active session. A declined
	// payment returns to AwaitingPayment with the provider message; a
	// success runs order confirmation and ends in Confirmed.
	Pay(ctx context.Context, input *PayInput) (*CheckoutView, error)

	// Current returns the active session state without advancing it.
	Current(ctx context.Context) (*CheckoutView, error)

	// Abandon discards the active session. The cart is left untouched.
	Abandon(ctx context.Context) error
}

// --- Input DTOs ---

// PayInput carries the provider payment-method token collected on the device.
type PayInput struct {
	PaymentMethodID string `json:"paymentMethodId" validate:"required"`
}

// --- Output DTOs ---

// ConfirmationView is the pickup ticket rendered after a confirmed order.
type ConfirmationView struct {
	OrderID             string          `json:"orderId"`
	OrderNumber         string          `json:"orderNumber"`
	FinalTotal          decimal.Decimal `json:"finalTotal"`
	CoinsEarned         int64           `json:"coinsEarned"`
	CoinBalance         int64           `json:"coinBalance"`
	EstimatedPickupTime time.Time       `json:"estimatedPickupTime"`
	PickupQR            []byte          `json:"pickupQr,omitempty"` // PNG
}

// CheckoutView is the checkout session state the payment screen renders.
type CheckoutView struct {
	SessionID    string            `json:"sessionId"`
	Phase        CheckoutPhase     `json:"phase"`
	Amount       decimal.Decimal   `json:"amount"`
	ErrorMessage string            `json:"errorMessage,omitempty"` // provider message on a declined attempt
	Confirmation *ConfirmationView `json:"confirmation,omitempty"`
}
