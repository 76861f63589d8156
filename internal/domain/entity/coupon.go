package entity

import "github.com/shopspring/decimal"

// Coupon is the validated result of a coupon-code submission. Validity
// (minimum order value, expiry, usage limit) is enforced server-side;
// the kiosk only holds the code and the discount the backend granted.
// At most one coupon is active per cart session.
type Coupon struct {
	Code     string
	Discount decimal.Decimal
}
