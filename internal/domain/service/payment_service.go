package service

import "context"

// PaymentOutcome classifies the provider's answer to a confirmation attempt.
type PaymentOutcome string

const (
	// PaymentSucceeded means the charge is final and the order may be created.
	PaymentSucceeded PaymentOutcome = "succeeded"
	// PaymentPending means the provider reported an intermediate status;
	// no order is created and the user stays on the payment form.
	PaymentPending PaymentOutcome = "pending"
	// PaymentFailed means the provider rejected the attempt; the message
	// is surfaced inline and the user may retry.
	PaymentFailed PaymentOutcome = "failed"
)

// PaymentResult is the provider's answer to a confirmation attempt.
type PaymentResult struct {
	IntentID string
	Outcome  PaymentOutcome
	Message  string // provider-supplied, user-facing; set when Outcome != PaymentSucceeded
}

// PaymentService finalizes a charge against a payment session without an
// automatic redirect, so the checkout orchestrator can react to the
// outcome in-place.
type PaymentService interface {
	// Confirm asks the provider to capture the charge authorized by the
	// session's client secret using the given payment method.
	// A provider-side decline is reported through PaymentResult, not an
	// error; errors are transport failures only.
	Confirm(ctx context.Context, clientSecret, paymentMethodID string) (*PaymentResult, error)
}
