// Package payment implements the payment-provider boundary on Stripe.
// The kiosk collects a payment method on the device and finalizes the
// charge here, without an automatic redirect, so the checkout
// orchestrator can react to the outcome in-place.
package payment

import (
	"context"
	"log/slog"
	"strings"

	"crave/config"
	"crave/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"
)

type stripeService struct {
	api    *stripeclient.API
	logger *slog.Logger
}

// NewStripeService creates the Stripe-backed payment service.
func NewStripeService(cfg *config.Config, logger *slog.Logger) service.PaymentService {
	return &stripeService{
		api:    stripeclient.New(cfg.Stripe.SecretKey, nil),
		logger: logger,
	}
}

// IntentIDFromClientSecret derives the payment-intent identifier from a
// session's client secret ("pi_..._secret_...").
func IntentIDFromClientSecret(clientSecret string) string {
	id, _, _ := strings.Cut(clientSecret, "_secret")

	return id
}

func (s *stripeService) Confirm(ctx context.Context, clientSecret, paymentMethodID string) (*service.PaymentResult, error) {
	intentID := IntentIDFromClientSecret(clientSecret)
	if intentID == "" {
		return nil, errors.New("payment session has no client secret")
	}

	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(paymentMethodID),
	}

	intent, err := s.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		// A decline comes back as a typed provider error with a
		// cardholder-safe message; everything else is transport.
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			s.logger.Info("payment declined",
				slog.String("intentID", intentID),
				slog.String("code", string(stripeErr.Code)),
			)

			return &service.PaymentResult{
				IntentID: intentID,
				Outcome:  service.PaymentFailed,
				Message:  stripeErr.Msg,
			}, nil
		}

		return nil, errors.Wrap(err, "failed to confirm payment intent")
	}

	result := &service.PaymentResult{IntentID: intent.ID}
	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		result.Outcome = service.PaymentSucceeded
	default:
		// Intermediate statuses (requires_action, processing, ...) are
		// not final: no order may be created yet.
		result.Outcome = service.PaymentPending
		result.Message = "Payment is still processing. Please try again in a moment"
	}

	return result, nil
}
